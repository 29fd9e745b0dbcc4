package driven

import "github.com/custodia-labs/docsuggest/internal/core/domain"

// SeedFile reads and writes the seed file format.
type SeedFile interface {
	// Load reads a snapshot from path.
	Load(path string) (domain.Snapshot, error)

	// Save writes snap to path, replacing the file atomically.
	Save(path string, snap domain.Snapshot) error
}
