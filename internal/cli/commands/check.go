package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
	_ "github.com/leapstack-labs/leaplogic/pkg/lint/rules" // Register built-in rules
	"github.com/leapstack-labs/leaplogic/pkg/parser"
)

// ErrCheckFailed is returned when a script has structural problems.
var ErrCheckFailed = errors.New("check failed")

// StatementReport describes one statement found by check.
type StatementReport struct {
	Line      int    `json:"line"`
	Kind      string `json:"kind"`
	Statement string `json:"statement"`
	Status    string `json:"status"`
	Problem   string `json:"problem,omitempty"`
}

// CheckReport is the JSON result of check.
type CheckReport struct {
	Script      string            `json:"script"`
	Statements  []StatementReport `json:"statements"`
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
	Errors      int               `json:"errors"`
	Warnings    int               `json:"warnings"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Check a script without running it",
		Long: `Split a script into statements, classify each one and run the lint
rules over it: bracket structure, identifiers, undefined and unused names,
and minterm ranges. Nothing is executed and no input is read.

Rules can be disabled or re-graded in leaplogic.yaml:

  lint:
    disabled: [LL05]
    severity:
      LL01: error`,
		Example: `  leaplogic check circuit.ll
  leaplogic check circuit.ll -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, script string) error {
	cc := NewCommandContext(cmd)

	src, err := os.ReadFile(script) //nolint:gosec // user-supplied script path
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	rules, err := cc.Cfg.Lint.Rules()
	if err != nil {
		return err
	}
	report := checkSource(script, string(src), rules)
	r := cc.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(report); err != nil {
			return err
		}
	} else {
		r.Header(1, fmt.Sprintf("%s (%d statements)", script, len(report.Statements)))
		rows := make([]table.Row, 0, len(report.Statements))
		for _, s := range report.Statements {
			status := s.Status
			if s.Problem != "" {
				status += ": " + s.Problem
			}
			rows = append(rows, table.Row{s.Line, s.Kind, s.Statement, status})
		}
		renderTable(r, table.Row{"Line", "Kind", "Statement", "Status"}, rows)
		for _, d := range report.Diagnostics {
			if d.Severity > lint.SeverityWarning {
				r.Muted(fmt.Sprintf("%s:%s: %s %s (%s)", script, d.Pos, d.Severity, d.Message, d.RuleID))
			}
		}
	}

	if report.Errors > 0 {
		return fmt.Errorf("%w: %d error(s) in %s", ErrCheckFailed, report.Errors, script)
	}
	if r.EffectiveMode() != output.ModeJSON {
		r.Success(fmt.Sprintf("No errors (%d warning(s))", report.Warnings))
	}
	return nil
}

// checkSource classifies every statement in src and attaches lint
// diagnostics to the statements they concern.
func checkSource(script, src string, rules *lint.Config) *CheckReport {
	ctx := lint.NewContext(src)
	diags := lint.NewAnalyzer(rules).Analyze(ctx)

	report := &CheckReport{
		Script:      script,
		Statements:  make([]StatementReport, 0, len(ctx.Statements)),
		Diagnostics: diags,
		Errors:      lint.CountSeverity(diags, lint.SeverityError),
		Warnings:    lint.CountSeverity(diags, lint.SeverityWarning),
	}
	if report.Diagnostics == nil {
		report.Diagnostics = []lint.Diagnostic{}
	}

	for _, stmt := range ctx.Statements {
		sr := StatementReport{
			Line:      stmt.Line,
			Kind:      parser.Classify(stmt).String(),
			Statement: strings.Join(stmt.Texts(), " "),
			Status:    "ok",
		}
		if d, ok := worstDiagnostic(diags, stmt.Line); ok {
			sr.Status = d.Severity.String()
			sr.Problem = d.Message
		}
		report.Statements = append(report.Statements, sr)
	}
	return report
}

// worstDiagnostic returns the first error, else the first warning,
// reported for a statement.
func worstDiagnostic(diags []lint.Diagnostic, line int) (lint.Diagnostic, bool) {
	var found lint.Diagnostic
	ok := false
	for _, d := range diags {
		if d.Line != line || d.Severity > lint.SeverityWarning {
			continue
		}
		if !ok || d.Severity < found.Severity {
			found, ok = d, true
		}
	}
	return found, ok
}
