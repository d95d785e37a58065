package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/semstack-labs/semstudio/internal/catalog"
	"github.com/semstack-labs/semstudio/internal/cli/config"
	"github.com/semstack-labs/semstudio/internal/engine"
	"github.com/semstack-labs/semstudio/internal/fit"
	"github.com/semstack-labs/semstudio/internal/normalize"
	"github.com/semstack-labs/semstudio/internal/state"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Engine  engine.Engine
	Store   *state.SQLiteStore
	Runner  *fit.Runner
	Catalog *catalog.Provider
}

// NewCommandContext creates a CommandContext with engine, run-history store,
// and fit runner. Returns the context and a cleanup function that must be
// called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := engine.Open(cfg.Engine)
	if err != nil {
		return nil, nil, err
	}

	store, err := openStateStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	provider, err := catalog.NewProvider(cfg.TemplatesDir)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to load custom templates: %w", err)
	}

	runner := fit.NewRunner(fit.Config{
		Engine:     eng,
		Normalizer: normalize.New(cfg.Normalize, logger),
		Store:      store,
		Logger:     logger,
	})

	cleanup := func() {
		_ = store.Close()
	}

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Engine:  eng,
		Store:   store,
		Runner:  runner,
		Catalog: provider,
	}, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without opening the
// run-history database. Useful for commands that only read templates.
func NewCommandContextWithoutStore(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	provider, err := catalog.NewProvider(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom templates: %w", err)
	}

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Catalog: provider,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults when
// no config has been loaded (e.g. in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	var cfg config.Config
	cfg.ApplyDefaults()
	cfg.OutputFormat = config.DefaultOutput
	return &cfg
}

// openStateStore opens the run-history database, creating its directory.
func openStateStore(cfg *config.Config, logger *slog.Logger) (*state.SQLiteStore, error) {
	stateDir := filepath.Dir(cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	return store, nil
}
