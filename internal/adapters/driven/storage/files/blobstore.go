// Package files keeps uploaded document bodies as plain files in one
// directory, named by content hash and extension.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore stores blobs under a single directory.
type BlobStore struct {
	dir string
}

// NewBlobStore creates the directory if needed.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *BlobStore) Dir() string {
	return s.dir
}

// Put writes the blob atomically so readers never see a partial file.
func (s *BlobStore) Put(_ context.Context, name string, r io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, r); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Open opens a stored blob.
func (s *BlobStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

// Delete removes a stored blob.
func (s *BlobStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

// path rejects names that would escape the directory.
func (s *BlobStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: blob name %q", domain.ErrInvalidInput, name)
	}
	return filepath.Join(s.dir, name), nil
}
