package file

import (
	"fmt"
	"time"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyStorageBackend  = "storage.backend"
	KeyStorageDataDir  = "storage.data_dir"
	KeySeedPath        = "seed.path"
	KeySeedWatch       = "seed.watch"
	KeyServerAddr      = "server.addr"
	KeyRebuildInterval = "index.rebuild_interval"
	KeyRebuildRate     = "index.rebuild_rate"
	KeyMaxResults      = "index.max_results"
)

// LoadConfig reads typed settings from store, starting from
// domain.DefaultConfig. Missing keys keep their defaults.
func LoadConfig(store driven.ConfigStore) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := store.GetString(KeyStorageBackend); v != "" {
		switch v {
		case domain.StorageSQLite, domain.StorageMemory:
			cfg.Storage.Backend = v
		default:
			return cfg, fmt.Errorf("%w: %s must be %q or %q, got %q",
				domain.ErrInvalidInput, KeyStorageBackend, domain.StorageSQLite, domain.StorageMemory, v)
		}
	}
	if v := store.GetString(KeyStorageDataDir); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := store.GetString(KeySeedPath); v != "" {
		cfg.Seed.Path = v
	}
	cfg.Seed.Watch = store.GetBool(KeySeedWatch)
	if v := store.GetString(KeyServerAddr); v != "" {
		cfg.Server.Addr = v
	}

	interval, err := duration(store, KeyRebuildInterval)
	if err != nil {
		return cfg, err
	}
	if interval > 0 {
		cfg.Index.RebuildInterval = interval
	}
	if _, ok := store.Get(KeyRebuildRate); ok {
		cfg.Index.RebuildRate = store.GetFloat(KeyRebuildRate)
	}
	if v := store.GetInt(KeyMaxResults); v > 0 {
		cfg.Index.MaxResults = v
	}

	return cfg, nil
}

// duration accepts a Go duration string ("90s", "5m") or a whole number
// of seconds.
func duration(store driven.ConfigStore, key string) (time.Duration, error) {
	val, ok := store.Get(key)
	if !ok {
		return 0, nil
	}
	if s, isString := val.(string); isString {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		return d, nil
	}
	return time.Duration(store.GetInt(key)) * time.Second, nil
}
