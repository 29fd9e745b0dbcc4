package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// AddDocumentRequest describes an upload.
type AddDocumentRequest struct {
	// OwnerID is the uploading user. Required.
	OwnerID string

	// Title is the autocomplete title. Required.
	Title string

	// Categories are free-form labels. At least one is required.
	Categories []string

	// FileName is the original file name; only its extension is kept.
	FileName string

	// Content is the file body. It is hashed to detect duplicates.
	Content io.Reader
}

// DocumentService manages uploaded documents.
type DocumentService interface {
	// Add validates and stores a new document, then schedules an index rebuild.
	// Returns a *domain.DuplicateContentError if the content is already stored.
	Add(ctx context.Context, req AddDocumentRequest) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// ListByOwner returns all documents of one owner.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Document, error)

	// ListAll returns every stored document.
	ListAll(ctx context.Context) ([]domain.Document, error)

	// Categories returns the shared category list, deduplicated and sorted.
	Categories(ctx context.Context) ([]string, error)

	// AddCategories merges categories into the shared list and returns it.
	// Returns domain.ErrInvalidInput if none is left after trimming.
	AddCategories(ctx context.Context, categories []string) ([]string, error)

	// Open returns the stored file body of a document.
	// Returns domain.ErrNotFound if the document or its body is missing.
	Open(ctx context.Context, documentID string) (io.ReadCloser, *domain.Document, error)

	// Delete removes a document and schedules an index rebuild.
	Delete(ctx context.Context, documentID string) error
}
