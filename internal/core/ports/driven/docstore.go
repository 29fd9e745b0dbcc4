package driven

import (
	"context"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// DocumentStore persists documents.
// Backed by SQLite, or by memory for tests and ephemeral runs.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// FindByHash retrieves a document by content hash.
	// Returns domain.ErrNotFound if no document has that hash.
	FindByHash(ctx context.Context, hash string) (*domain.Document, error)

	// DeleteDocument removes a document. Deleting a missing document is not an error.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns the documents of one owner.
	ListDocuments(ctx context.Context, ownerID string) ([]domain.Document, error)

	// ListAllDocuments returns every document.
	ListAllDocuments(ctx context.Context) ([]domain.Document, error)
}
