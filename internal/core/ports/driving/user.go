package driving

import (
	"context"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// UserService manages document owners.
type UserService interface {
	// Add stores a user, assigning an ID when none is set.
	Add(ctx context.Context, user domain.User) (*domain.User, error)

	// Get retrieves a user by ID.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)

	// Remove deletes a user and schedules an index rebuild.
	Remove(ctx context.Context, userID string) error
}
