package driven

import (
	"context"
	"io"
)

// BlobStore keeps uploaded file bodies, keyed by Document.FileName().
type BlobStore interface {
	// Put stores the content under name, replacing any previous content.
	Put(ctx context.Context, name string, r io.Reader) error

	// Open returns the content stored under name.
	// Returns domain.ErrNotFound if nothing is stored there.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes the content. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}
