// Package cli provides the docsuggest command line.
// Commands drive the core through its driving ports; the composition root
// hands them a Services value through a Bootstrap function.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// errNotConfigured is returned by commands that run without services.
var errNotConfigured = errors.New("services not configured")

// Options are the global flags handed to Bootstrap.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.docsuggest.
	ConfigDir string

	// DataDir overrides storage.data_dir.
	DataDir string

	// Backend overrides storage.backend.
	Backend string

	// SeedPath overrides seed.path.
	SeedPath string

	Verbose bool
}

// Services is everything the commands drive.
type Services struct {
	Config domain.Config

	// ConfigStore is the config.toml the Config was loaded from.
	ConfigStore driven.ConfigStore

	Suggest   driving.SuggestService
	Documents driving.DocumentService
	Users     driving.UserService
	Seed      driving.SeedService

	// Metrics serves the Prometheus registry. Nil disables /metrics.
	Metrics http.Handler

	// Background loops run by long-lived commands: the rebuilder and,
	// when enabled, the seed watcher.
	Background []driving.Scheduler

	// Close releases stores. May be nil.
	Close func() error
}

// Bootstrap builds Services from the global flags.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	opts      Options
	bootstrap Bootstrap
	services  *Services
)

var rootCmd = &cobra.Command{
	Use:   "docsuggest",
	Short: "Per-user document title autocomplete",
	Long: `docsuggest keeps one prefix index of document titles per user and
answers "starts with" queries for title autocomplete.

Documents and users live in SQLite (or memory). The index is rebuilt from
them on startup, after uploads and deletes, when the seed file changes and
on request.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.ConfigDir, "config", "", "config directory (default ~/.docsuggest)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "data directory (overrides storage.data_dir)")
	flags.StringVar(&opts.Backend, "backend", "", "storage backend: sqlite or memory")
	flags.StringVar(&opts.SeedPath, "seed", "", "db.json seed file (overrides seed.path)")
}

// SetServices injects ready-made services, bypassing Bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute(ver string, b Bootstrap) error {
	if ver != "" {
		version = ver
	}
	bootstrap = b

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

// needsServices reports whether cmd talks to the core.
func needsServices(cmd *cobra.Command) bool {
	return cmd.Annotations["services"] != "none"
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	logger.SetOutput(os.Stderr)

	if services != nil || bootstrap == nil || !needsServices(cmd) {
		return nil
	}

	s, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("starting docsuggest: %w", err)
	}
	services = s
	return nil
}

func teardown() error {
	if services == nil || services.Close == nil || bootstrap == nil {
		return nil
	}
	err := services.Close()
	services = nil
	return err
}

// requireServices returns the injected services or errNotConfigured.
func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}
