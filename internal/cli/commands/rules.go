package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
	_ "github.com/leapstack-labs/leaplogic/pkg/lint/rules" // Register built-in rules
)

// RuleInfo is a lint rule as configured for the current project.
type RuleInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Group       string        `json:"group"`
	Description string        `json:"description"`
	Default     lint.Severity `json:"default_severity"`
	Severity    lint.Severity `json:"severity"`
	Enabled     bool          `json:"enabled"`
	BadExample  string        `json:"bad_example,omitempty"`
	GoodExample string        `json:"good_example,omitempty"`
}

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group string
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List lint rules",
		Long: `List the lint rules used by check and the language server, with the
severity each one has after the lint section of leaplogic.yaml is applied.`,
		Example: `  leaplogic rules
  leaplogic rules --group reference
  leaplogic rules LL04`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Only rules in this group (structure, reference, literal)")
	return cmd
}

func collectRules(cfg *lint.Config, group string) []RuleInfo {
	defs := lint.GetAll()
	if group != "" {
		defs = lint.GetByGroup(group)
	}

	infos := make([]RuleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, RuleInfo{
			ID:          def.ID,
			Name:        def.Name,
			Group:       def.Group,
			Description: def.Description,
			Default:     def.Severity,
			Severity:    cfg.GetSeverity(def.ID, def.Severity),
			Enabled:     !cfg.IsDisabled(def.ID),
			BadExample:  def.BadExample,
			GoodExample: def.GoodExample,
		})
	}
	return infos
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cc := NewCommandContext(cmd)
	cfg, err := cc.Cfg.Lint.Rules()
	if err != nil {
		return err
	}
	infos := collectRules(cfg, opts.Group)
	r := cc.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	r.Header(1, fmt.Sprintf("Lint rules (%d)", len(infos)))
	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		severity := info.Severity.String()
		if !info.Enabled {
			severity = "off"
		}
		rows = append(rows, table.Row{info.ID, info.Name, severity, info.Description})
	}
	renderTable(r, table.Row{"ID", "Name", "Severity", "Description"}, rows)
	return nil
}

func showRule(cmd *cobra.Command, id string) error {
	cc := NewCommandContext(cmd)
	cfg, err := cc.Cfg.Lint.Rules()
	if err != nil {
		return err
	}

	var info *RuleInfo
	for _, ri := range collectRules(cfg, "") {
		if ri.ID == id {
			info = &ri
			break
		}
	}
	if info == nil {
		return fmt.Errorf("rule %q not found", id)
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Header(1, info.ID+" "+info.Name)
	r.KeyValue("Group", info.Group)
	r.KeyValue("Severity", info.Severity.String())
	if info.Severity != info.Default {
		r.KeyValue("Default", info.Default.String())
	}
	if !info.Enabled {
		r.KeyValue("Enabled", "no")
	}
	r.Println(info.Description)
	if info.BadExample != "" {
		r.Header(2, "Bad")
		r.Println(info.BadExample)
	}
	if info.GoodExample != "" {
		r.Header(2, "Good")
		r.Println(info.GoodExample)
	}
	return nil
}
