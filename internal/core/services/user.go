package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// Ensure UserService implements the interface.
var _ driving.UserService = (*UserService)(nil)

// UserService manages document owners.
type UserService struct {
	userStore driven.UserStore
	docStore  driven.DocumentStore
	trigger   driven.RebuildTrigger
}

// NewUserService creates a new user service.
func NewUserService(
	userStore driven.UserStore,
	docStore driven.DocumentStore,
	trigger driven.RebuildTrigger,
) *UserService {
	return &UserService{
		userStore: userStore,
		docStore:  docStore,
		trigger:   trigger,
	}
}

// Add stores a new user. An empty ID is replaced by a generated one.
func (s *UserService) Add(ctx context.Context, user domain.User) (*domain.User, error) {
	if s.userStore == nil {
		return nil, domain.ErrNotImplemented
	}

	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Email = strings.TrimSpace(user.Email)
	if user.DisplayName() == "" {
		return nil, fmt.Errorf("%w: a first or last name is required", domain.ErrInvalidInput)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	} else {
		_, err := s.userStore.GetUser(ctx, user.ID)
		switch {
		case err == nil:
			return nil, fmt.Errorf("user %s: %w", user.ID, domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}

	if err := s.userStore.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.triggerRebuild()
	return &user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	if s.userStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.userStore.GetUser(ctx, userID)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if s.userStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.userStore.ListUsers(ctx)
}

// Remove deletes a user together with their documents.
func (s *UserService) Remove(ctx context.Context, userID string) error {
	if s.userStore == nil {
		return domain.ErrNotImplemented
	}

	if _, err := s.userStore.GetUser(ctx, userID); err != nil {
		return err
	}

	if s.docStore != nil {
		docs, err := s.docStore.ListDocuments(ctx, userID)
		if err != nil {
			return fmt.Errorf("listing documents: %w", err)
		}
		for _, d := range docs {
			if err := s.docStore.DeleteDocument(ctx, d.ID); err != nil {
				return fmt.Errorf("deleting document %s: %w", d.ID, err)
			}
		}
	}

	if err := s.userStore.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.triggerRebuild()
	return nil
}

func (s *UserService) triggerRebuild() {
	if s.trigger != nil {
		s.trigger.Trigger(domain.RebuildUsers)
	}
}
