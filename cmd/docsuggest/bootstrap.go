package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/docsuggest/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/metrics"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/files"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/jsondb"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/core/services"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// bootstrap wires stores, services and background loops from config.toml
// and the global flags, then builds the first index generation.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	defer logger.Timed("startup")()

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	cfg, err := file.LoadConfig(configStore)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = filepath.Join(filepath.Dir(configStore.Path()), "data")
	}
	logger.Debug("config: %s, backend %s, data %s", configStore.Path(), cfg.Storage.Backend, cfg.Storage.DataDir)

	var (
		docStore  driven.DocumentStore
		userStore driven.UserStore
		blobs     driven.BlobStore
		closers   []func() error
	)
	switch cfg.Storage.Backend {
	case domain.StorageMemory:
		docStore = memory.NewDocumentStore()
		userStore = memory.NewUserStore()
		blobs = memory.NewBlobStore()
	default:
		store, err := sqlite.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, store.Close)
		docStore = store.DocumentStore()
		userStore = store.UserStore()

		fileStore, err := files.NewBlobStore(filepath.Join(cfg.Storage.DataDir, "files"))
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("opening file store: %w", err)
		}
		blobs = fileStore
	}
	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}

	m, err := metrics.New()
	if err != nil {
		_ = closeAll()
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	suggest := services.NewSuggestService(docStore, userStore)
	suggest.SetMetrics(m)
	suggest.SetMaxResults(cfg.Index.MaxResults)

	rebuilder := services.NewRebuilder(suggest, cfg.Index.RebuildRate, cfg.Index.RebuildInterval)

	documents := services.NewDocumentService(docStore, userStore, rebuilder)
	documents.SetBlobStore(blobs)
	documents.SetCategoryStore(configStore)
	users := services.NewUserService(userStore, docStore, rebuilder)
	seed := services.NewSeedService(jsondb.File{}, userStore, docStore, rebuilder)

	background := []driving.Scheduler{rebuilder}

	if cfg.Seed.Path != "" {
		if _, err := seed.Import(ctx, cfg.Seed.Path); err != nil {
			_ = closeAll()
			return nil, fmt.Errorf("importing seed: %w", err)
		}

		if cfg.Seed.Watch {
			path := cfg.Seed.Path
			watcher, err := jsondb.NewWatcher(path, jsondb.DefaultDebounce, func() {
				if _, err := seed.Import(context.Background(), path); err != nil {
					logger.Warn("seed reload failed: %v", err)
				}
			})
			if err != nil {
				_ = closeAll()
				return nil, fmt.Errorf("watching seed: %w", err)
			}
			background = append(background, watcher)
		}
	}

	if _, err := suggest.Rebuild(ctx, domain.RebuildStartup); err != nil {
		_ = closeAll()
		return nil, fmt.Errorf("building index: %w", err)
	}

	return &cli.Services{
		Config:      cfg,
		ConfigStore: configStore,
		Suggest:     suggest,
		Documents:   documents,
		Users:       users,
		Seed:        seed,
		Metrics:     m.Handler(),
		Background:  background,
		Close:       closeAll,
	}, nil
}

// applyOverrides lays the global flags over the loaded config.
func applyOverrides(cfg *domain.Config, opts cli.Options) error {
	if opts.Backend != "" {
		switch opts.Backend {
		case domain.StorageSQLite, domain.StorageMemory:
			cfg.Storage.Backend = opts.Backend
		default:
			return fmt.Errorf("%w: --backend must be %q or %q, got %q",
				domain.ErrInvalidInput, domain.StorageSQLite, domain.StorageMemory, opts.Backend)
		}
	}
	if opts.DataDir != "" {
		cfg.Storage.DataDir = opts.DataDir
	}
	if opts.SeedPath != "" {
		cfg.Seed.Path = opts.SeedPath
	}
	return nil
}
