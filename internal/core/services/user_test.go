package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

func TestUserService_Add_GeneratesID(t *testing.T) {
	users := memory.NewUserStore()
	trigger := &recordingTrigger{}
	svc := NewUserService(users, memory.NewDocumentStore(), trigger)

	user, err := svc.Add(context.Background(), domain.User{FirstName: " Ada ", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Len(t, user.ID, 36)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, []domain.RebuildReason{domain.RebuildUsers}, trigger.reasons)

	stored, err := users.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, *user, *stored)
}

func TestUserService_Add_KeepsGivenID(t *testing.T) {
	svc := NewUserService(memory.NewUserStore(), nil, nil)
	ctx := context.Background()

	user, err := svc.Add(ctx, domain.User{ID: "1", FirstName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	_, err = svc.Add(ctx, domain.User{ID: "1", FirstName: "Grace"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUserService_Add_RequiresName(t *testing.T) {
	svc := NewUserService(memory.NewUserStore(), nil, nil)

	_, err := svc.Add(context.Background(), domain.User{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserService_GetAndList(t *testing.T) {
	svc := NewUserService(memory.NewUserStore(), nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.User{ID: "1", FirstName: "Ada"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.User{ID: "2", FirstName: "Grace"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.Get(ctx, "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Remove_CascadesDocuments(t *testing.T) {
	users := memory.NewUserStore()
	docs := memory.NewDocumentStore()
	trigger := &recordingTrigger{}
	svc := NewUserService(users, docs, trigger)
	ctx := context.Background()

	_ = users.SaveUser(ctx, domain.User{ID: "u1", FirstName: "Ada"})
	_ = users.SaveUser(ctx, domain.User{ID: "u2", FirstName: "Grace"})
	_ = docs.SaveDocument(ctx, &domain.Document{ID: "d1", OwnerID: "u1", Title: "Annual Report"})
	_ = docs.SaveDocument(ctx, &domain.Document{ID: "d2", OwnerID: "u2", Title: "Budget"})

	require.NoError(t, svc.Remove(ctx, "u1"))

	_, err := users.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	all, err := docs.ListAllDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "d2", all[0].ID)
	assert.Equal(t, []domain.RebuildReason{domain.RebuildUsers}, trigger.reasons)

	assert.ErrorIs(t, svc.Remove(ctx, "u1"), domain.ErrNotFound)
}

func TestUserService_NilStore(t *testing.T) {
	svc := NewUserService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.User{FirstName: "A"})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, svc.Remove(ctx, "x"), domain.ErrNotImplemented)
}
