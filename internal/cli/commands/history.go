package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/internal/state"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded script runs",
		Long: `List recent runs from the history database, newest first.
Pass a run ID to show a single run in detail.`,
		Example: `  leaplogic history
  leaplogic history --limit 5 -o json
  leaplogic history 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runHistoryShow(cmd, args[0])
			}
			return runHistoryList(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}

func openHistoryStore(cmd *cobra.Command, cc *CommandContext) (state.Store, error) {
	store, err := cc.OpenHistory(cmd.Context())
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("run history is disabled (no_history is set)")
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, opts *HistoryOptions) error {
	cc := NewCommandContext(cmd)
	store, err := openHistoryStore(cmd, cc)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(cmd.Context(), opts.Limit)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if runs == nil {
			runs = []*state.Run{}
		}
		return r.JSON(runs)
	}

	r.Header(1, fmt.Sprintf("Runs (%d shown)", len(runs)))
	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, table.Row{
			shortID(run.ID),
			run.Script,
			run.Status,
			run.Statements,
			run.Warnings,
			run.Duration.Round(time.Microsecond),
			run.StartedAt.Local().Format(time.DateTime),
		})
	}
	renderTable(r, table.Row{"ID", "Script", "Status", "Statements", "Warnings", "Duration", "Started"}, rows)
	return nil
}

func runHistoryShow(cmd *cobra.Command, id string) error {
	cc := NewCommandContext(cmd)
	store, err := openHistoryStore(cmd, cc)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	run, err := store.GetRun(cmd.Context(), id)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(run)
	}

	r.Header(1, "Run "+run.ID)
	r.KeyValue("Script", run.Script)
	r.KeyValue("Status", string(run.Status))
	r.KeyValue("Statements", fmt.Sprintf("%d", run.Statements))
	r.KeyValue("Warnings", fmt.Sprintf("%d", run.Warnings))
	r.KeyValue("Duration", run.Duration.String())
	r.KeyValue("Started", run.StartedAt.Local().Format(time.RFC3339))
	if run.CompletedAt != nil {
		r.KeyValue("Completed", run.CompletedAt.Local().Format(time.RFC3339))
	}
	if run.Error != "" {
		r.KeyValue("Error", run.Error)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
