package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantKinds []string
		errors    int
		warnings  int
	}{
		{
			name:      "every statement form",
			src:       "a 1 ; x and a [ or a [ not a ] ] ; t set a ; t min 1 ; input b ; print x t ;",
			wantKinds: []string{"assign", "logic", "set", "min", "input", "print"},
		},
		{
			name:      "unused lines warn",
			src:       "a ; ; b 1",
			wantKinds: []string{"unused", "unused", "assign"},
			warnings:  2,
		},
		{
			name:      "unbalanced bracket",
			src:       "x and a [ b ;",
			wantKinds: []string{"logic"},
			errors:    1,
		},
		{
			name:      "group without operator",
			src:       "x or [ a b ] ;",
			wantKinds: []string{"logic"},
			errors:    1,
		},
		{
			name:      "undefined operand",
			src:       "a 1 ; x or a q ; print x ;",
			wantKinds: []string{"assign", "logic", "print"},
			errors:    1,
		},
		{
			name:      "minterm out of range",
			src:       "a 1 ; t set a ; t min 2 ; print t ;",
			wantKinds: []string{"assign", "set", "min", "print"},
			warnings:  1,
		},
		{
			name:      "keyword as input target",
			src:       "input a min ;",
			wantKinds: []string{"input"},
			errors:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := checkSource("s.ll", tt.src, nil)

			kinds := make([]string, len(report.Statements))
			for i, s := range report.Statements {
				kinds[i] = s.Kind
				assert.Equal(t, i+1, s.Line)
			}
			assert.Equal(t, tt.wantKinds, kinds)
			assert.Equal(t, tt.errors, report.Errors)
			assert.Equal(t, tt.warnings, report.Warnings)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	setupProject(t)
	good := writeScript(t, "good.ll", "a 1 ; x not a ; print x ;")
	bad := writeScript(t, "bad.ll", "a 1 ; x and ] a ;")

	res := execute(t, NewCheckCommand(), "", good)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "# good.ll (3 statements)")
	assert.Contains(t, res.Out, "| 2 | logic | x not a | ok |")
	assert.Contains(t, res.Out, "No errors")

	res = execute(t, NewCheckCommand(), "", bad)
	require.ErrorIs(t, res.Err, ErrCheckFailed)
	assert.Contains(t, res.Out, "error: ")
}

func TestCheckCommand_JSON(t *testing.T) {
	setupProject(t, "-o", "json")
	script := writeScript(t, "s.ll", "x and [ a ;")

	res := execute(t, NewCheckCommand(), "", script)
	require.ErrorIs(t, res.Err, ErrCheckFailed)

	var report CheckReport
	require.NoError(t, json.Unmarshal([]byte(res.Out), &report))
	require.Len(t, report.Statements, 1)
	assert.Equal(t, parser.KindLogic.String(), report.Statements[0].Kind)
	assert.Equal(t, "error", report.Statements[0].Status)
	assert.NotEmpty(t, report.Statements[0].Problem)
}

func TestCheckCommand_LintConfig(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaplogic.yaml"),
		[]byte("output: json\nlint:\n  disabled: [LL05]\n  severity:\n    LL01: error\n"), 0o600))
	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	script := writeScript(t, "s.ll", "input a b ; a ; print a ;")
	res := execute(t, NewCheckCommand(), "", script)
	require.ErrorIs(t, res.Err, ErrCheckFailed)

	var report CheckReport
	require.NoError(t, json.Unmarshal([]byte(res.Out), &report))
	assert.Equal(t, 1, report.Errors)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "LL01", report.Diagnostics[0].RuleID)
	assert.Equal(t, lint.SeverityError, report.Diagnostics[0].Severity)
	assert.Equal(t, "error", report.Statements[1].Status)
}

func TestCheckCommand_ShowsHints(t *testing.T) {
	setupProject(t)
	script := writeScript(t, "s.ll", "input a b ; print a ;")

	res := execute(t, NewCheckCommand(), "", script)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, `s.ll:1:9: hint "b" is never used (LL05)`)
	assert.Contains(t, res.Out, "No errors (0 warning(s))")
}
