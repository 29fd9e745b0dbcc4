package jsondb

import (
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
)

// File is the driven.SeedFile backed by the db.json format.
type File struct{}

var _ driven.SeedFile = File{}

// Load reads a seed file.
func (File) Load(path string) (domain.Snapshot, error) {
	return Load(path)
}

// Save writes snap to path atomically.
func (File) Save(path string, snap domain.Snapshot) error {
	return Export(path, snap)
}
