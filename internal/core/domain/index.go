package domain

import "time"

// IndexStats describes one build generation of the title index.
type IndexStats struct {
	// Generation increments on every build. Zero means nothing was built yet.
	Generation uint64 `json:"generation"`

	// Owners is the number of per-owner indexes.
	Owners int `json:"owners"`

	// Documents is the number of retrievable documents across all owners.
	Documents int `json:"documents"`

	// Nodes is the number of trie nodes across all owners, roots included.
	Nodes int `json:"nodes"`

	// Overwritten counts inserts that replaced a document at an existing key.
	Overwritten int `json:"overwritten"`

	// Skipped counts documents whose normalised title was empty.
	Skipped int `json:"skipped"`

	// BuiltAt is when the generation was published.
	BuiltAt time.Time `json:"builtAt"`

	// Duration is how long the build pass took.
	Duration time.Duration `json:"duration"`
}

// RebuildReason records what triggered an index rebuild.
type RebuildReason string

// Rebuild reasons.
const (
	RebuildStartup     RebuildReason = "startup"
	RebuildManual      RebuildReason = "manual"
	RebuildUpload      RebuildReason = "upload"
	RebuildDelete      RebuildReason = "delete"
	RebuildUsers       RebuildReason = "users-changed"
	RebuildSeedChanged RebuildReason = "seed-changed"
	RebuildInterval    RebuildReason = "interval"
)
