package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/internal/engine"
	"github.com/leapstack-labs/leaplogic/internal/state"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// RunSummary is the result of one script run.
type RunSummary struct {
	RunID      string        `json:"run_id,omitempty"`
	Script     string        `json:"script"`
	Status     string        `json:"status"`
	Statements int           `json:"statements"`
	Warnings   int           `json:"warnings"`
	Duration   time.Duration `json:"duration_ns"`
	Error      string        `json:"error,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a LeapLogic script",
		Long: `Execute a LeapLogic script statement by statement.

Prints go to stdout. Warnings and errors go to stderr prefixed with
[script:line]. The first error stops the run. Values for input
statements are read from stdin, one per line.`,
		Example: `  # Run a script
  leaplogic run circuit.ll

  # Feed inputs from a file
  leaplogic run circuit.ll < inputs.txt

  # Re-run whenever the script changes
  leaplogic run circuit.ll --watch

  # JSON events for tooling
  leaplogic run circuit.ll -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the script when it changes")

	return cmd
}

func runRun(cmd *cobra.Command, script string, opts *RunOptions) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("script not found: %w", err)
	}

	input := output.NewReaderInput(cmd.InOrStdin(), promptWriter(cmd))

	if opts.Watch {
		return watchScript(ctx, script, defaultDebounce, cc.Logger, func(ctx context.Context) error {
			_, err := executeScript(ctx, cc, script, input)
			return err
		})
	}

	_, err := executeScript(ctx, cc, script, input)
	return err
}

// executeScript runs one script, records it in the history store and
// prints the summary.
func executeScript(ctx context.Context, cc *CommandContext, script string, input engine.InputReader) (*RunSummary, error) {
	src, err := os.ReadFile(script) //nolint:gosec // user-supplied script path
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	recorder := newRunRecorder(ctx, cc, script)
	defer recorder.close()

	console := output.NewConsole(cc.Renderer, script)
	interp := engine.NewFromSource(string(src), cc.EngineOptions(console, input))
	runErr := interp.Run(ctx)
	stats := interp.Stats()

	summary := &RunSummary{
		RunID:      recorder.id(),
		Script:     script,
		Status:     string(state.RunStatusCompleted),
		Statements: stats.Statements,
		Warnings:   stats.Warnings,
		Duration:   stats.Duration,
	}
	if runErr != nil {
		summary.Status = string(state.RunStatusFailed)
		summary.Error = runErr.Error()
	}

	recorder.complete(ctx, summary)
	printSummary(cc, summary)

	return summary, runErr
}

func printSummary(cc *CommandContext, s *RunSummary) {
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(s)
		return
	}
	if !cc.Cfg.Timing {
		return
	}
	r.Muted(fmt.Sprintf("Completed in %s", s.Duration.Round(time.Microsecond)))
}

// runRecorder writes the run to the history store. History failures are
// logged and never fail the run.
type runRecorder struct {
	logger *slog.Logger
	store  state.Store
	run    *state.Run
}

func newRunRecorder(ctx context.Context, cc *CommandContext, script string) *runRecorder {
	rec := &runRecorder{logger: cc.Logger}

	store, err := cc.OpenHistory(ctx)
	if err != nil {
		cc.Logger.Warn("run history disabled", "error", err)
		return rec
	}
	if store == nil {
		return rec
	}
	rec.store = store

	run, err := store.CreateRun(ctx, script)
	if err != nil {
		cc.Logger.Warn("failed to record run", "error", err)
		return rec
	}
	rec.run = run
	return rec
}

func (r *runRecorder) id() string {
	if r.run == nil {
		return ""
	}
	return r.run.ID
}

func (r *runRecorder) complete(ctx context.Context, s *RunSummary) {
	if r.store == nil || r.run == nil {
		return
	}
	// A cancelled run is still recorded.
	ctx = context.WithoutCancel(ctx)
	stats := state.RunStats{Statements: s.Statements, Warnings: s.Warnings, Duration: s.Duration}
	if err := r.store.CompleteRun(ctx, r.run.ID, state.RunStatus(s.Status), stats, s.Error); err != nil {
		r.logger.Warn("failed to record run", "error", err)
	}
}

func (r *runRecorder) close() {
	if r.store != nil {
		_ = r.store.Close()
	}
}
