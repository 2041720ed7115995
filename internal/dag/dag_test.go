package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

func chain(t *testing.T, ids ...string) *Graph[string] {
	t.Helper()
	g := NewGraph[string]()
	for _, id := range ids {
		g.AddNode(id, "node "+id)
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i]))
	}
	return g
}

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := chain(t, "a", "b", "c")
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.AddEdge("a", "b"))
	assert.Equal(t, 2, g.EdgeCount(), "duplicate edges are ignored")

	g.AddNode("a", "renamed")
	node, ok := g.GetNode("a")
	require.True(t, ok)
	assert.Equal(t, "renamed", node.Data)
	assert.Equal(t, 3, g.NodeCount())
}

func TestGraph_AddEdge_Errors(t *testing.T) {
	g := NewGraph[int]()
	g.AddNode("a", 1)

	tests := []struct {
		name           string
		parent, child  string
		wantErrMessage string
	}{
		{"missing child", "a", "nope", `child node "nope" does not exist`},
		{"missing parent", "nope", "a", `parent node "nope" does not exist`},
		{"self loop", "a", "a", "self-loop detected: a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, g.AddEdge(tt.parent, tt.child), tt.wantErrMessage)
		})
	}
}

func TestGraph_HasCycle(t *testing.T) {
	g := chain(t, "a", "b", "c")
	hasCycle, _ := g.HasCycle()
	assert.False(t, hasCycle)

	require.NoError(t, g.AddEdge("c", "a"))
	hasCycle, path := g.HasCycle()
	assert.True(t, hasCycle)
	assert.NotEmpty(t, path)

	_, err := g.GetExecutionLevels()
	assert.ErrorContains(t, err, "cycle detected")
}

func TestGraph_Levels(t *testing.T) {
	g := chain(t, "a", "b", "d")
	g.AddNode("c", "")
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("c", "d"))
	g.AddNode("e", "")

	levels, err := g.GetExecutionLevels()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "e"}, {"b", "c"}, {"d"}}, levels)

	assert.Equal(t, []string{"a", "e"}, g.GetRoots())
	assert.Equal(t, []string{"d", "e"}, g.GetLeaves())
	assert.Equal(t, []string{"a", "b", "c"}, g.GetUpstreamNodes("d"))
	assert.Equal(t, []string{"b", "c", "d"}, g.GetDownstreamNodes("a"))
	assert.Empty(t, g.GetUpstreamNodes("a"))
}

func TestBuildScriptGraph(t *testing.T) {
	src := `input a b ;
s or [ and a [ not b ] ] [ and b [ not a ] ] ;
c and a b ;
t set a b ;
t min 3 ;
y t ;
c not c ;
print s c y ;`
	g := BuildScriptGraph(lint.NewContext(src))

	ids := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"a@1", "b@1", "s@2", "c@3", "t@4", "y@6", "c@7"}, ids)

	assert.ElementsMatch(t, []string{"a@1", "b@1"}, g.GetParents("s@2"))
	assert.Equal(t, []string{"t@4"}, g.GetParents("y@6"))
	assert.Equal(t, []string{"c@3"}, g.GetParents("c@7"))

	id, ok := g.Resolve("c")
	require.True(t, ok)
	assert.Equal(t, "c@7", id)
	id, ok = g.Resolve("c@3")
	require.True(t, ok)
	assert.Equal(t, "c@3", id)
	_, ok = g.Resolve("zz")
	assert.False(t, ok)

	c7, _ := g.GetNode("c@7")
	assert.True(t, c7.Data.Printed)
	c3, _ := g.GetNode("c@3")
	assert.False(t, c3.Data.Printed)
	assert.Equal(t, "logic", c3.Data.Kind)

	assert.Equal(t, []string{"a@1", "b@1", "c@3"}, g.GetUpstreamNodes("c@7"))
}

func TestBuildScriptGraph_SkipsUndefined(t *testing.T) {
	g := BuildScriptGraph(lint.NewContext("x and q ; print q ;"))
	assert.Equal(t, 1, g.NodeCount())
	assert.Empty(t, g.GetParents("x@1"))
}
