package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/core/titleindex"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// Ensure SuggestService implements the interface.
var _ driving.SuggestService = (*SuggestService)(nil)

// SuggestService answers autocomplete queries from the title index and
// rebuilds the index from the document and user stores.
type SuggestService struct {
	registry   *titleindex.Registry
	docStore   driven.DocumentStore
	userStore  driven.UserStore
	metrics    driven.IndexMetrics
	maxResults int

	// rebuildMu orders snapshot loads with their publication, so a
	// generation is never built from an older snapshot than the one before it.
	rebuildMu sync.Mutex
}

// NewSuggestService creates a suggest service over an empty index.
// Call Rebuild once the stores are ready.
func NewSuggestService(docStore driven.DocumentStore, userStore driven.UserStore) *SuggestService {
	return &SuggestService{
		registry:  titleindex.NewRegistry(),
		docStore:  docStore,
		userStore: userStore,
	}
}

// SetMetrics sets the metrics sink. Nil disables metrics.
func (s *SuggestService) SetMetrics(m driven.IndexMetrics) {
	s.metrics = m
}

// SetMaxResults caps results for queries that pass no limit.
func (s *SuggestService) SetMaxResults(n int) {
	s.maxResults = n
}

// Suggest returns the owner's documents whose titles start with prefix.
func (s *SuggestService) Suggest(
	_ context.Context, ownerID, prefix string, opts domain.SuggestOptions,
) (domain.SuggestResult, error) {
	logger.Section("Suggest")
	logger.Debug("Owner: %q, prefix: %q", ownerID, prefix)

	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	start := time.Now()
	res, err := s.registry.Query(ownerID, prefix, limit)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveQuery(len(res.Documents), elapsed, err)
	}
	if err != nil {
		logger.Debug("Lookup failed in generation %d: %v", res.Generation, err)
		return domain.SuggestResult{}, err
	}

	logger.Debug("Generation %d returned %d documents in %s", res.Generation, len(res.Documents), elapsed)
	return domain.SuggestResult{
		OwnerID:    ownerID,
		Prefix:     prefix,
		Documents:  res.Documents,
		Generation: res.Generation,
	}, nil
}

// Rebuild loads a snapshot from the stores and publishes a new index
// generation. On a load failure the current generation stays in place.
func (s *SuggestService) Rebuild(ctx context.Context, reason domain.RebuildReason) (domain.IndexStats, error) {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	logger.Section("Index Build")
	logger.Debug("Reason: %s", reason)

	snap, err := s.Snapshot(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveBuildFailure(reason)
		}
		return s.registry.Stats(), fmt.Errorf("loading snapshot: %w", err)
	}

	stats := s.registry.Build(snap.ByOwner())
	logger.Info("Generation %d: %d owners, %d documents, %d nodes in %s",
		stats.Generation, stats.Owners, stats.Documents, stats.Nodes, stats.Duration)
	if stats.Overwritten > 0 {
		logger.Warn("%d documents hidden by a later document with the same title", stats.Overwritten)
	}

	if s.metrics != nil {
		s.metrics.ObserveBuild(reason, stats)
	}
	return stats, nil
}

// Snapshot reads every user and document from the stores.
func (s *SuggestService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if s.docStore == nil || s.userStore == nil {
		return domain.Snapshot{}, domain.ErrNotImplemented
	}

	users, err := s.userStore.ListUsers(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("listing users: %w", err)
	}
	docs, err := s.docStore.ListAllDocuments(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("listing documents: %w", err)
	}
	return domain.Snapshot{Users: users, Documents: docs}, nil
}

// Stats returns the figures of the current index generation.
func (s *SuggestService) Stats() domain.IndexStats {
	return s.registry.Stats()
}

// Owners returns the owners indexed in the current generation.
func (s *SuggestService) Owners() []string {
	return s.registry.Owners()
}
