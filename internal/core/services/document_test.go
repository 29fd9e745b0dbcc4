package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

type recordingTrigger struct {
	mu      sync.Mutex
	reasons []domain.RebuildReason
}

func (r *recordingTrigger) Trigger(reason domain.RebuildReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func newDocumentFixture(t *testing.T) (*DocumentService, *memory.DocumentStore, *recordingTrigger) {
	t.Helper()
	docs := memory.NewDocumentStore()
	users := memory.NewUserStore()
	require.NoError(t, users.SaveUser(context.Background(), domain.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace"}))

	trigger := &recordingTrigger{}
	svc := NewDocumentService(docs, users, trigger)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, docs, trigger
}

func upload(owner, title, content string) driving.AddDocumentRequest {
	return driving.AddDocumentRequest{
		OwnerID:    owner,
		Title:      title,
		Categories: []string{"finance"},
		FileName:   "report.PDF",
		Content:    strings.NewReader(content),
	}
}

func TestDocumentService_Add(t *testing.T) {
	svc, docs, trigger := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := svc.Add(ctx, upload("u1", "  Annual Report ", "hello"))
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "u1", doc.OwnerID)
	assert.Equal(t, "Annual Report", doc.Title)
	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", doc.HashValue)
	assert.Equal(t, ".pdf", doc.FileExt)
	assert.Equal(t, "Ada Lovelace", doc.Author)
	assert.Equal(t, []string{"finance"}, doc.Categories)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), doc.UploadDate)

	stored, err := docs.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, *doc, *stored)
	assert.Equal(t, []domain.RebuildReason{domain.RebuildUpload}, trigger.reasons)
}

func TestDocumentService_Add_DuplicateContent(t *testing.T) {
	svc, _, trigger := newDocumentFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, upload("u1", "Annual Report", "same bytes"))
	require.NoError(t, err)

	_, err = svc.Add(ctx, upload("u1", "Another Title", "same bytes"))
	require.ErrorIs(t, err, domain.ErrDuplicateContent)

	var dup *domain.DuplicateContentError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.ID, dup.Existing.ID)
	assert.Len(t, trigger.reasons, 1)
}

func TestDocumentService_Add_Validation(t *testing.T) {
	svc, _, trigger := newDocumentFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  driving.AddDocumentRequest
	}{
		{"empty title", upload("u1", "   ", "x")},
		{"no owner", upload("", "Title", "x")},
		{"no categories", driving.AddDocumentRequest{OwnerID: "u1", Title: "T", Content: strings.NewReader("x")}},
		{"blank categories", driving.AddDocumentRequest{OwnerID: "u1", Title: "T", Categories: []string{" ", ""}, Content: strings.NewReader("x")}},
		{"no content", driving.AddDocumentRequest{OwnerID: "u1", Title: "T", Categories: []string{"c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, trigger.reasons)
}

func TestDocumentService_Add_UnknownOwner(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)

	_, err := svc.Add(context.Background(), upload("ghost", "Title", "x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Add_CleansCategories(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)
	req := upload("u1", "Title", "x")
	req.Categories = []string{" tax ", "tax", "", "2024"}

	doc, err := svc.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"tax", "2024"}, doc.Categories)
}

func TestDocumentService_GetAndList(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)
	ctx := context.Background()

	a, err := svc.Add(ctx, upload("u1", "Annual Report", "a"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, upload("u1", "Monthly Report", "b"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", got.Title)

	list, err := svc.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDocumentService_Categories(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)
	ctx := context.Background()

	got, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.AddCategories(ctx, []string{" tax ", "legal", "tax", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"legal", "tax"}, got)

	// The upload fixture tags documents with "finance".
	_, err = svc.Add(ctx, upload("u1", "Annual Report", "a"))
	require.NoError(t, err)
	got, err = svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"finance", "legal", "tax"}, got)

	_, err = svc.AddCategories(ctx, []string{" ", ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Categories_Persisted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewConfigStore()
	// Reloaded TOML arrays come back untyped.
	require.NoError(t, store.Set(categoriesKey, []any{"archive"}))

	svc, _, _ := newDocumentFixture(t)
	svc.SetCategoryStore(store)

	got, err := svc.AddCategories(ctx, []string{"tax"})
	require.NoError(t, err)
	assert.Equal(t, []string{"archive", "tax"}, got)

	saved, ok := store.Get(categoriesKey)
	require.True(t, ok)
	assert.Equal(t, []string{"archive", "tax"}, saved)

	// A second service on the same store sees the registered list.
	other, _, _ := newDocumentFixture(t)
	other.SetCategoryStore(store)
	got, err = other.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"archive", "tax"}, got)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, docs, trigger := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := svc.Add(ctx, upload("u1", "Annual Report", "a"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID))
	_, err = docs.GetDocument(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []domain.RebuildReason{domain.RebuildUpload, domain.RebuildDelete}, trigger.reasons)

	assert.ErrorIs(t, svc.Delete(ctx, doc.ID), domain.ErrNotFound)
}

func TestDocumentService_NilStores(t *testing.T) {
	svc := NewDocumentService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, upload("u1", "T", "x"))
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.ListByOwner(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.ListAll(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Categories(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.AddCategories(ctx, []string{"tax"})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, svc.Delete(ctx, "x"), domain.ErrNotImplemented)
}

func TestDocumentService_NoTrigger(t *testing.T) {
	docs := memory.NewDocumentStore()
	users := memory.NewUserStore()
	_ = users.SaveUser(context.Background(), domain.User{ID: "u1", FirstName: "Ada"})
	svc := NewDocumentService(docs, users, nil)

	_, err := svc.Add(context.Background(), upload("u1", "Title", "x"))
	assert.NoError(t, err)
}

func TestDocumentService_BlobLifecycle(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)
	blobs := memory.NewBlobStore()
	svc.SetBlobStore(blobs)
	ctx := context.Background()

	doc, err := svc.Add(ctx, upload("u1", "Annual Report", "quarterly numbers"))
	require.NoError(t, err)
	assert.Equal(t, 1, blobs.Len())

	rc, got, err := svc.Open(ctx, doc.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "quarterly numbers", string(body))
	assert.Equal(t, doc.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, doc.ID))
	assert.Equal(t, 0, blobs.Len())

	_, _, err = svc.Open(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Open_WithoutBlobStore(t *testing.T) {
	svc, _, _ := newDocumentFixture(t)

	_, _, err := svc.Open(context.Background(), "any")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
