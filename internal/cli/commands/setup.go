package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/internal/engine"
	"github.com/leapstack-labs/leaplogic/internal/state"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the command context from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// EngineOptions returns interpreter options for this context.
func (c *CommandContext) EngineOptions(sink engine.Sink, input engine.InputReader) engine.Options {
	return engine.Options{
		Sink:         sink,
		Input:        input,
		Logger:       c.Logger,
		MaxDepth:     c.Cfg.MaxDepth,
		InputTimeout: c.Cfg.InputTimeout,
	}
}

// OpenHistory opens and migrates the run history store. It returns a nil
// store when history is disabled.
func (c *CommandContext) OpenHistory(ctx context.Context) (state.Store, error) {
	if !c.Cfg.HistoryEnabled() {
		return nil, nil
	}
	store := state.NewSQLiteStore(c.Logger)
	if err := store.Open(c.Cfg.HistoryPath); err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate history: %w", err)
	}
	return store, nil
}

// getConfig returns the loaded configuration, or defaults when commands
// run without the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// promptWriter returns where input prompts go: stderr when stdin is a
// terminal, nowhere otherwise.
func promptWriter(cmd *cobra.Command) io.Writer {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return cmd.ErrOrStderr()
	}
	return nil
}
