package titleindex

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// UserIndex binds one owner to its trie.
type UserIndex struct {
	OwnerID string
	trie    *Trie
}

// Search delegates to the owner's trie.
func (u *UserIndex) Search(prefix string, limit int) []domain.Document {
	return u.trie.SearchN(prefix, limit)
}

// Len returns the number of documents in the owner's trie.
func (u *UserIndex) Len() int {
	return u.trie.Len()
}

// generation is one immutable build of the registry.
type generation struct {
	indexes map[string]*UserIndex
	stats   domain.IndexStats
}

// Result is a query answer tagged with the generation that produced it.
type Result struct {
	Documents  []domain.Document
	Generation uint64
}

// Registry holds the per-owner indexes of the current generation.
type Registry struct {
	buildMu sync.Mutex
	current atomic.Pointer[generation]
	now     func() time.Time
}

// NewRegistry returns a registry holding an empty generation 0. Every query
// fails with domain.ErrOwnerNotFound until the first Build.
func NewRegistry() *Registry {
	r := &Registry{now: time.Now}
	r.current.Store(&generation{indexes: map[string]*UserIndex{}})
	return r
}

// Build constructs a fresh trie for every owner in byOwner and publishes
// the result as the new generation. Owners mapped to no documents get an
// empty index. In-flight queries finish against the generation they loaded.
func (r *Registry) Build(byOwner map[string][]domain.Document) domain.IndexStats {
	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	start := r.now()
	prev := r.current.Load()

	gen := &generation{indexes: make(map[string]*UserIndex, len(byOwner))}
	stats := domain.IndexStats{Generation: prev.stats.Generation + 1}

	for ownerID, docs := range byOwner {
		trie := NewTrie()
		for _, doc := range docs {
			switch trie.Insert(doc) {
			case Replaced:
				stats.Overwritten++
				logger.Debug("titleindex: owner %s: %q replaced an earlier document with the same title", ownerID, doc.Title)
			case Skipped:
				stats.Skipped++
				logger.Debug("titleindex: owner %s: document %s has an empty title, skipped", ownerID, doc.ID)
			}
		}
		gen.indexes[ownerID] = &UserIndex{OwnerID: ownerID, trie: trie}
		stats.Documents += trie.Len()
		stats.Nodes += trie.Nodes()
	}

	stats.Owners = len(gen.indexes)
	stats.BuiltAt = r.now()
	stats.Duration = stats.BuiltAt.Sub(start)
	gen.stats = stats

	r.current.Store(gen)
	return stats
}

// Search returns the documents of ownerID whose titles start with prefix.
func (r *Registry) Search(ownerID, prefix string) ([]domain.Document, error) {
	res, err := r.Query(ownerID, prefix, 0)
	if err != nil {
		return nil, err
	}
	return res.Documents, nil
}

// Query is Search with a result cap, also reporting the answering generation.
func (r *Registry) Query(ownerID, prefix string, limit int) (Result, error) {
	gen := r.current.Load()
	idx, ok := gen.indexes[ownerID]
	if !ok {
		return Result{Generation: gen.stats.Generation}, fmt.Errorf("%w: %s", domain.ErrOwnerNotFound, ownerID)
	}
	return Result{
		Documents:  idx.Search(prefix, limit),
		Generation: gen.stats.Generation,
	}, nil
}

// Has reports whether the current generation has an index for ownerID.
func (r *Registry) Has(ownerID string) bool {
	_, ok := r.current.Load().indexes[ownerID]
	return ok
}

// Owners returns the owner IDs of the current generation, sorted.
func (r *Registry) Owners() []string {
	gen := r.current.Load()
	owners := make([]string, 0, len(gen.indexes))
	for id := range gen.indexes {
		owners = append(owners, id)
	}
	sort.Strings(owners)
	return owners
}

// Stats returns the figures of the current generation.
func (r *Registry) Stats() domain.IndexStats {
	return r.current.Load().stats
}
