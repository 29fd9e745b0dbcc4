package driving

import (
	"context"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// SuggestService answers title autocomplete queries.
type SuggestService interface {
	// Suggest returns the owner's documents whose titles start with prefix.
	// Returns domain.ErrOwnerNotFound if the index has no entry for ownerID.
	Suggest(ctx context.Context, ownerID, prefix string, opts domain.SuggestOptions) (domain.SuggestResult, error)

	// Rebuild loads a fresh snapshot from the stores and swaps in a new index generation.
	Rebuild(ctx context.Context, reason domain.RebuildReason) (domain.IndexStats, error)

	// Stats returns the figures of the current index generation.
	Stats() domain.IndexStats
}
