package domain

import "time"

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Seed    SeedConfig
	Server  ServerConfig
	Index   IndexConfig
}

// StorageConfig selects where users and documents live.
type StorageConfig struct {
	// Backend is StorageSQLite or StorageMemory.
	Backend string

	// DataDir is the directory holding the SQLite database.
	// Empty means ~/.docsuggest/data.
	DataDir string
}

// SeedConfig describes an optional db.json file loaded into the store.
type SeedConfig struct {
	// Path is the seed file. Empty disables seeding.
	Path string

	// Watch reloads the seed file and rebuilds the index when it changes.
	Watch bool
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string
}

// IndexConfig controls how often the title index is rebuilt.
type IndexConfig struct {
	// RebuildInterval triggers a periodic rebuild. Zero disables it.
	RebuildInterval time.Duration

	// RebuildRate caps rebuilds per second; bursts of triggers coalesce.
	RebuildRate float64

	// MaxResults caps results when a caller does not pass a limit.
	// Zero means unbounded.
	MaxResults int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Backend: StorageSQLite},
		Server:  ServerConfig{Addr: ":5000"},
		Index: IndexConfig{
			RebuildInterval: 0,
			RebuildRate:     2,
			MaxResults:      0,
		},
	}
}
