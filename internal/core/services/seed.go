package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// Ensure SeedService implements the interface.
var _ driving.SeedService = (*SeedService)(nil)

// SeedService imports and exports the seed file.
type SeedService struct {
	file      driven.SeedFile
	userStore driven.UserStore
	docStore  driven.DocumentStore
	trigger   driven.RebuildTrigger
}

// NewSeedService creates a new seed service.
func NewSeedService(
	file driven.SeedFile,
	userStore driven.UserStore,
	docStore driven.DocumentStore,
	trigger driven.RebuildTrigger,
) *SeedService {
	return &SeedService{
		file:      file,
		userStore: userStore,
		docStore:  docStore,
		trigger:   trigger,
	}
}

// Import upserts the users and documents of the seed file at path.
// Records without an ID are rejected before anything is written.
func (s *SeedService) Import(ctx context.Context, path string) (domain.ImportResult, error) {
	var res domain.ImportResult
	if s.file == nil || s.userStore == nil || s.docStore == nil {
		return res, domain.ErrNotImplemented
	}

	snap, err := s.file.Load(path)
	if err != nil {
		return res, err
	}

	for _, u := range snap.Users {
		if u.ID == "" {
			return res, fmt.Errorf("%w: user without id", domain.ErrInvalidInput)
		}
	}
	for i := range snap.Documents {
		if snap.Documents[i].ID == "" {
			return res, fmt.Errorf("%w: document without id", domain.ErrInvalidInput)
		}
	}

	for _, u := range snap.Users {
		if err := s.userStore.SaveUser(ctx, u); err != nil {
			return res, fmt.Errorf("importing user %s: %w", u.ID, err)
		}
		res.Users++
	}
	for i := range snap.Documents {
		d := snap.Documents[i]
		if err := s.docStore.SaveDocument(ctx, &d); err != nil {
			return res, fmt.Errorf("importing document %s: %w", d.ID, err)
		}
		res.Documents++
	}

	logger.Info("seed: imported %d users, %d documents from %s", res.Users, res.Documents, path)
	if s.trigger != nil {
		s.trigger.Trigger(domain.RebuildSeedChanged)
	}
	return res, nil
}

// Export writes every stored user and document to path.
func (s *SeedService) Export(ctx context.Context, path string) (domain.ImportResult, error) {
	if s.file == nil || s.userStore == nil || s.docStore == nil {
		return domain.ImportResult{}, domain.ErrNotImplemented
	}

	users, err := s.userStore.ListUsers(ctx)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("listing users: %w", err)
	}
	docs, err := s.docStore.ListAllDocuments(ctx)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("listing documents: %w", err)
	}

	if err := s.file.Save(path, domain.Snapshot{Users: users, Documents: docs}); err != nil {
		return domain.ImportResult{}, err
	}

	logger.Debug("seed: exported %d users, %d documents to %s", len(users), len(docs), path)
	return domain.ImportResult{Users: len(users), Documents: len(docs)}, nil
}
