package commands

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

func TestRulesCommand_List(t *testing.T) {
	setupProject(t)

	res := execute(t, NewRulesCommand(), "")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "# Lint rules (7)")
	assert.Contains(t, res.Out, "| LL04 | reference.undefined | error |")
	assert.Contains(t, res.Out, "| LL05 | reference.unused | hint |")
}

func TestRulesCommand_Group(t *testing.T) {
	setupProject(t, "-o", "json")

	res := execute(t, NewRulesCommand(), "", "--group", "literal")
	require.NoError(t, res.Err)

	var infos []RuleInfo
	require.NoError(t, json.Unmarshal([]byte(res.Out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "LL06", infos[0].ID)
	assert.Equal(t, "LL07", infos[1].ID)
}

func TestRulesCommand_AppliesConfig(t *testing.T) {
	setupProject(t)
	require.NoError(t, os.WriteFile("leaplogic.yaml", []byte("lint:\n  disabled: [LL05]\n  severity:\n    LL01: error\n"), 0o600))
	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	infos := collectRules(mustRules(t), "")
	byID := make(map[string]RuleInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.False(t, byID["LL05"].Enabled)
	assert.Equal(t, lint.SeverityError, byID["LL01"].Severity)
	assert.Equal(t, lint.SeverityWarning, byID["LL01"].Default)

	res := execute(t, NewRulesCommand(), "")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "| LL05 | reference.unused | off |")
}

func TestRulesCommand_Show(t *testing.T) {
	setupProject(t)

	res := execute(t, NewRulesCommand(), "", "LL06")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "# LL06 literal.meaningless_minterm")
	assert.Contains(t, res.Out, "- **Severity:** warning")
	assert.Contains(t, res.Out, "t set a b ; t min 4 ;")

	res = execute(t, NewRulesCommand(), "", "XX99")
	assert.ErrorContains(t, res.Err, `rule "XX99" not found`)
}

func mustRules(t *testing.T) *lint.Config {
	t.Helper()
	cfg, err := config.GetCurrentConfig().Lint.Rules()
	require.NoError(t, err)
	return cfg
}
