package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/internal/dag"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

// DepsNode is one definition in the JSON output of deps.
type DepsNode struct {
	*dag.Definition
	Level     int      `json:"level"`
	DependsOn []string `json:"depends_on"`
}

// DepsReport is the JSON result of deps.
type DepsReport struct {
	Script  string     `json:"script"`
	Focus   string     `json:"focus,omitempty"`
	Nodes   []DepsNode `json:"nodes"`
	Inputs  []string   `json:"inputs"`
	Outputs []string   `json:"outputs"`
}

// NewDepsCommand creates the deps command.
func NewDepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <script> [name]",
		Short: "Show how script variables depend on each other",
		Long: `Build the dependency graph of a script without running it. Every
statement that binds a name is a node named name@statement; each node
depends on the definitions it reads.

With a name (or name@statement), show only that definition's lineage:
everything it depends on and everything that depends on it. A bare name
means its last definition.`,
		Example: `  leaplogic deps adder.ll
  leaplogic deps adder.ll carry
  leaplogic deps adder.ll sum@4 -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			focus := ""
			if len(args) == 2 {
				focus = args[1]
			}
			return runDeps(cmd, args[0], focus)
		},
	}
}

func runDeps(cmd *cobra.Command, script, focus string) error {
	r := NewCommandContext(cmd).Renderer

	src, err := os.ReadFile(script) //nolint:gosec // user-supplied script path
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	report, err := buildDepsReport(script, string(src), focus)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(report)
	}

	title := fmt.Sprintf("%s (%d definitions)", script, len(report.Nodes))
	if report.Focus != "" {
		title = "Lineage of " + report.Focus
	}
	r.Header(1, title)

	rows := make([]table.Row, 0, len(report.Nodes))
	for _, n := range report.Nodes {
		rows = append(rows, table.Row{n.ID, n.Kind, n.Level, strings.Join(n.DependsOn, " ")})
	}
	renderTable(r, table.Row{"Node", "Kind", "Level", "Depends on"}, rows)

	r.KeyValue("Inputs", listOrNone(report.Inputs))
	r.KeyValue("Outputs", listOrNone(report.Outputs))
	return nil
}

// buildDepsReport lays the graph out in script order, restricted to the
// lineage of focus when set.
func buildDepsReport(script, src, focus string) (*DepsReport, error) {
	g := dag.BuildScriptGraph(lint.NewContext(src))
	levels, err := g.Levels()
	if err != nil {
		return nil, err
	}

	report := &DepsReport{Script: script, Nodes: []DepsNode{}, Inputs: []string{}, Outputs: []string{}}

	keep := func(string) bool { return true }
	if focus != "" {
		id, ok := g.Resolve(focus)
		if !ok {
			return nil, fmt.Errorf("no definition of %q in %s", focus, script)
		}
		report.Focus = id
		lineage := map[string]bool{id: true}
		for _, n := range g.GetUpstreamNodes(id) {
			lineage[n] = true
		}
		for _, n := range g.GetDownstreamNodes(id) {
			lineage[n] = true
		}
		keep = func(n string) bool { return lineage[n] }
	}

	for _, node := range g.Nodes() {
		if !keep(node.ID) {
			continue
		}
		deps := g.GetParents(node.ID)
		if deps == nil {
			deps = []string{}
		}
		report.Nodes = append(report.Nodes, DepsNode{Definition: node.Data, Level: levels[node.ID], DependsOn: deps})
		if node.Data.Kind == "input" {
			report.Inputs = append(report.Inputs, node.ID)
		}
		if node.Data.Printed {
			report.Outputs = append(report.Outputs, node.ID)
		}
	}
	return report, nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
