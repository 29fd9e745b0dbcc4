package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages uploaded documents.
type DocumentService struct {
	docStore  driven.DocumentStore
	userStore driven.UserStore
	blobs     driven.BlobStore
	trigger   driven.RebuildTrigger
	now       func() time.Time

	catMu      sync.Mutex
	catStore   driven.ConfigStore
	registered []string
}

// categoriesKey is where registered categories are kept in the config store.
const categoriesKey = "documents.categories"

// NewDocumentService creates a new document service.
// trigger may be nil, in which case the index is not refreshed on change.
func NewDocumentService(
	docStore driven.DocumentStore,
	userStore driven.UserStore,
	trigger driven.RebuildTrigger,
) *DocumentService {
	return &DocumentService{
		docStore:  docStore,
		userStore: userStore,
		trigger:   trigger,
		now:       time.Now,
	}
}

// SetBlobStore sets where uploaded file bodies are kept.
// Without one, only the metadata and content hash are stored.
func (s *DocumentService) SetBlobStore(blobs driven.BlobStore) {
	s.blobs = blobs
}

// SetCategoryStore sets where registered categories are persisted.
// Without one, they last as long as the process.
func (s *DocumentService) SetCategoryStore(store driven.ConfigStore) {
	s.catMu.Lock()
	defer s.catMu.Unlock()
	s.catStore = store
}

// Add validates the request, hashes the content and stores a new document.
func (s *DocumentService) Add(ctx context.Context, req driving.AddDocumentRequest) (*domain.Document, error) {
	if s.docStore == nil || s.userStore == nil {
		return nil, domain.ErrNotImplemented
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	categories := cleanCategories(req.Categories)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrInvalidInput)
	}
	if req.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if req.Content == nil {
		return nil, fmt.Errorf("%w: no file uploaded", domain.ErrInvalidInput)
	}

	owner, err := s.userStore.GetUser(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", req.OwnerID, err)
	}

	content, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	hash := hashContent(content)

	existing, err := s.docStore.FindByHash(ctx, hash)
	switch {
	case err == nil:
		return nil, &domain.DuplicateContentError{Existing: *existing}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.NewString(),
		OwnerID:    owner.ID,
		Title:      title,
		HashValue:  hash,
		FileExt:    strings.ToLower(filepath.Ext(req.FileName)),
		Author:     owner.DisplayName(),
		Categories: categories,
		UploadDate: s.now().UTC(),
	}
	if s.blobs != nil {
		if err := s.blobs.Put(ctx, doc.FileName(), bytes.NewReader(content)); err != nil {
			return nil, fmt.Errorf("storing file: %w", err)
		}
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}

	s.triggerRebuild(domain.RebuildUpload)
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.GetDocument(ctx, documentID)
}

// ListByOwner returns all documents of one owner.
func (s *DocumentService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.ListDocuments(ctx, ownerID)
}

// ListAll returns every stored document.
func (s *DocumentService) ListAll(ctx context.Context) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.ListAllDocuments(ctx)
}

// Categories returns the registered categories merged with those of every
// stored document, deduplicated and sorted.
func (s *DocumentService) Categories(ctx context.Context) ([]string, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	docs, err := s.docStore.ListAllDocuments(ctx)
	if err != nil {
		return nil, err
	}

	s.catMu.Lock()
	all := s.loadRegistered()
	s.catMu.Unlock()
	for _, d := range docs {
		all = append(all, d.Categories...)
	}
	all = cleanCategories(all)
	slices.Sort(all)
	return all, nil
}

// AddCategories registers categories so they are offered before any
// document uses them. Returns the full category list.
func (s *DocumentService) AddCategories(ctx context.Context, categories []string) ([]string, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	added := cleanCategories(categories)
	if len(added) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrInvalidInput)
	}

	s.catMu.Lock()
	merged := cleanCategories(append(s.loadRegistered(), added...))
	slices.Sort(merged)
	if s.catStore != nil {
		if err := s.catStore.Set(categoriesKey, merged); err != nil {
			s.catMu.Unlock()
			return nil, fmt.Errorf("saving categories: %w", err)
		}
	} else {
		s.registered = merged
	}
	s.catMu.Unlock()

	return s.Categories(ctx)
}

// loadRegistered returns a copy of the registered categories. Callers hold catMu.
func (s *DocumentService) loadRegistered() []string {
	if s.catStore == nil {
		return slices.Clone(s.registered)
	}
	val, _ := s.catStore.Get(categoriesKey)
	switch v := val.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		// TOML arrays decode as []any.
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Open returns the stored file body of a document.
func (s *DocumentService) Open(ctx context.Context, documentID string) (io.ReadCloser, *domain.Document, error) {
	if s.docStore == nil || s.blobs == nil {
		return nil, nil, domain.ErrNotImplemented
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, doc.FileName())
	if err != nil {
		return nil, nil, fmt.Errorf("file %s: %w", doc.FileName(), err)
	}
	return rc, doc, nil
}

// Delete removes a document and its stored file body.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.docStore.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	if s.blobs != nil && doc.HashValue != "" {
		if err := s.blobs.Delete(ctx, doc.FileName()); err != nil {
			return fmt.Errorf("deleting file: %w", err)
		}
	}

	s.triggerRebuild(domain.RebuildDelete)
	return nil
}

func (s *DocumentService) triggerRebuild(reason domain.RebuildReason) {
	if s.trigger != nil {
		s.trigger.Trigger(reason)
	}
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// cleanCategories trims each category and drops empty and repeated ones.
func cleanCategories(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
