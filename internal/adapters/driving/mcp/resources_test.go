package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid user documents URI",
			uri:      "docsuggest://users/u-123/documents",
			expected: "u-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://users/u-123/documents",
			expected: "",
		},
		{
			name:     "missing documents suffix",
			uri:      "docsuggest://users/u-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractUserID(tt.uri))
		})
	}
}

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "docsuggest://documents/doc-456",
			expected: "doc-456",
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/doc-456",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleUsersResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil user service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}})
		require.NoError(t, err)

		result, err := server.handleUsersResource(ctx, makeReadResourceRequest("docsuggest://users"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns users successfully", func(t *testing.T) {
		users := &mockUserService{
			users: []domain.User{{ID: "u1", FirstName: "Ada", LastName: "Lovelace"}},
		}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Users: users})
		require.NoError(t, err)

		result, err := server.handleUsersResource(ctx, makeReadResourceRequest("docsuggest://users"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "u1"`)
		assert.Contains(t, result.Contents[0].Text, "Ada Lovelace")
		assert.Contains(t, result.Contents[0].Text, "docsuggest://users/u1/documents")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		users := &mockUserService{err: errors.New("database error")}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Users: users})
		require.NoError(t, err)

		_, err = server.handleUsersResource(ctx, makeReadResourceRequest("docsuggest://users"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing users")
	})
}

func TestServer_handleUserDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}})
		require.NoError(t, err)

		_, err = server.handleUserDocumentsResource(ctx, makeReadResourceRequest("docsuggest://users/u1/documents"))
		require.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: &mockDocumentService{}})
		require.NoError(t, err)

		_, err = server.handleUserDocumentsResource(ctx, makeReadResourceRequest("docsuggest://invalid/uri"))
		require.Error(t, err)
	})

	t.Run("returns documents of the user", func(t *testing.T) {
		docs := &mockDocumentService{
			documents: []domain.Document{
				{ID: "d1", OwnerID: "u1", Title: "Annual Report"},
				{ID: "d2", OwnerID: "u1", Title: "Monthly Report"},
			},
		}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: docs})
		require.NoError(t, err)

		result, err := server.handleUserDocumentsResource(ctx, makeReadResourceRequest("docsuggest://users/u1/documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "u1", docs.lastOwner)
		assert.Contains(t, result.Contents[0].Text, "Annual Report")
		assert.Contains(t, result.Contents[0].Text, "docsuggest://documents/d2")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		docs := &mockDocumentService{err: errors.New("database error")}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: docs})
		require.NoError(t, err)

		_, err = server.handleUserDocumentsResource(ctx, makeReadResourceRequest("docsuggest://users/u1/documents"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document metadata", func(t *testing.T) {
		docs := &mockDocumentService{
			document: &domain.Document{ID: "d1", OwnerID: "u1", Title: "Annual Report", Categories: []string{"finance"}},
		}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: docs})
		require.NoError(t, err)

		result, err := server.handleDocumentResource(ctx, makeReadResourceRequest("docsuggest://documents/d1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"title": "Annual Report"`)
		assert.Contains(t, result.Contents[0].Text, "finance")
	})

	t.Run("missing document returns not found", func(t *testing.T) {
		docs := &mockDocumentService{err: domain.ErrNotFound}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: docs})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docsuggest://documents/nope"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		docs := &mockDocumentService{err: errors.New("disk error")}
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: docs})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docsuggest://documents/d1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting document")
	})

	t.Run("empty ID returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Suggest: &mockSuggestService{}, Documents: &mockDocumentService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docsuggest://documents/"))
		require.Error(t, err)
	})
}
