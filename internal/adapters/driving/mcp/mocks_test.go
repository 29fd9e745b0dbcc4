package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// mockSuggestService is a mock implementation of driving.SuggestService.
type mockSuggestService struct {
	result domain.SuggestResult
	stats  domain.IndexStats
	err    error

	lastOwner  string
	lastPrefix string
	lastOpts   domain.SuggestOptions
}

func (m *mockSuggestService) Suggest(
	_ context.Context,
	ownerID, prefix string,
	opts domain.SuggestOptions,
) (domain.SuggestResult, error) {
	m.lastOwner = ownerID
	m.lastPrefix = prefix
	m.lastOpts = opts
	return m.result, m.err
}

func (m *mockSuggestService) Rebuild(_ context.Context, _ domain.RebuildReason) (domain.IndexStats, error) {
	return m.stats, m.err
}

func (m *mockSuggestService) Stats() domain.IndexStats {
	return m.stats
}

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct {
	users []domain.User
	err   error
}

func (m *mockUserService) Add(_ context.Context, u domain.User) (*domain.User, error) {
	return &u, m.err
}

func (m *mockUserService) Get(_ context.Context, id string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserService) List(_ context.Context) ([]domain.User, error) {
	return m.users, m.err
}

func (m *mockUserService) Remove(_ context.Context, _ string) error {
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	err       error

	lastOwner string
}

func (m *mockDocumentService) Add(_ context.Context, _ driving.AddDocumentRequest) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) ListByOwner(_ context.Context, ownerID string) ([]domain.Document, error) {
	m.lastOwner = ownerID
	return m.documents, m.err
}

func (m *mockDocumentService) ListAll(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Categories(_ context.Context) ([]string, error) {
	return nil, m.err
}

func (m *mockDocumentService) AddCategories(_ context.Context, categories []string) ([]string, error) {
	return categories, m.err
}

func (m *mockDocumentService) Open(_ context.Context, _ string) (io.ReadCloser, *domain.Document, error) {
	return nil, m.document, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}
