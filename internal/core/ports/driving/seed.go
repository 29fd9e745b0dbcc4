package driving

import (
	"context"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// SeedService moves users and documents between the stores and a seed file.
type SeedService interface {
	// Import upserts every user and document of the seed file by ID and
	// schedules an index rebuild. Rows missing from the file are kept.
	Import(ctx context.Context, path string) (domain.ImportResult, error)

	// Export writes every stored user and document to path.
	Export(ctx context.Context, path string) (domain.ImportResult, error)
}
