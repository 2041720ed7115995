package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adderScript = `input a b cin ;
p or [ and a [ not b ] ] [ and b [ not a ] ] ;
sum or [ and p [ not cin ] ] [ and cin [ not p ] ] ;
carry or [ and a b ] [ and p cin ] ;
unused not a ;
print sum carry ;
`

func TestBuildDepsReport(t *testing.T) {
	report, err := buildDepsReport("adder.ll", adderScript, "")
	require.NoError(t, err)

	ids := make([]string, len(report.Nodes))
	for i, n := range report.Nodes {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"a@1", "b@1", "cin@1", "p@2", "sum@3", "carry@4", "unused@5"}, ids)
	assert.Equal(t, []string{"a@1", "b@1", "cin@1"}, report.Inputs)
	assert.Equal(t, []string{"sum@3", "carry@4"}, report.Outputs)
	assert.Equal(t, 2, report.Nodes[4].Level)
	assert.ElementsMatch(t, []string{"p@2", "cin@1"}, report.Nodes[4].DependsOn)
}

func TestBuildDepsReport_Focus(t *testing.T) {
	tests := []struct {
		focus   string
		wantIDs []string
	}{
		{focus: "sum", wantIDs: []string{"a@1", "b@1", "cin@1", "p@2", "sum@3"}},
		{focus: "p@2", wantIDs: []string{"a@1", "b@1", "p@2", "sum@3", "carry@4"}},
		{focus: "unused", wantIDs: []string{"a@1", "unused@5"}},
	}

	for _, tt := range tests {
		t.Run(tt.focus, func(t *testing.T) {
			report, err := buildDepsReport("adder.ll", adderScript, tt.focus)
			require.NoError(t, err)
			ids := make([]string, len(report.Nodes))
			for i, n := range report.Nodes {
				ids[i] = n.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, err := buildDepsReport("adder.ll", adderScript, "nope")
	assert.ErrorContains(t, err, `no definition of "nope"`)
}

func TestDepsCommand(t *testing.T) {
	setupProject(t)
	script := writeScript(t, "adder.ll", adderScript)

	res := execute(t, NewDepsCommand(), "", script, "carry")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "# Lineage of carry@4")
	assert.Contains(t, res.Out, "| carry@4 | logic | 2 |")
	assert.Contains(t, res.Out, "- **Outputs:** carry@4")
}

func TestDepsCommand_JSON(t *testing.T) {
	setupProject(t, "-o", "json")
	script := writeScript(t, "adder.ll", adderScript)

	res := execute(t, NewDepsCommand(), "", script)
	require.NoError(t, res.Err)

	var report DepsReport
	require.NoError(t, json.Unmarshal([]byte(res.Out), &report))
	require.Len(t, report.Nodes, 7)
	assert.Equal(t, "p", report.Nodes[3].Name)
	assert.Equal(t, []string{"a@1", "b@1"}, report.Nodes[3].DependsOn)
}
