package driven

import (
	"context"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// UserStore persists users.
type UserStore interface {
	// SaveUser stores or updates a user.
	SaveUser(ctx context.Context, user domain.User) error

	// GetUser retrieves a user by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// DeleteUser removes a user. Deleting a missing user is not an error.
	DeleteUser(ctx context.Context, id string) error

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
