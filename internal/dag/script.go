package dag

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
)

// Definition is one binding of a name by a statement. A name bound by
// several statements yields several definitions.
type Definition struct {
	ID        string `json:"id"` // name@statement
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Line      int    `json:"line"`
	Statement string `json:"statement"`
	Printed   bool   `json:"printed"`
}

// ScriptGraph is the dependency graph of a script's definitions.
type ScriptGraph struct {
	*Graph[*Definition]

	latest map[string]string // name -> ID of its last definition
}

// DefinitionID names the definition of name made by statement line.
func DefinitionID(name string, line int) string {
	return fmt.Sprintf("%s@%d", name, line)
}

// BuildScriptGraph links every definition to the definitions it reads.
// Reads of undefined names are skipped; lint reports them.
func BuildScriptGraph(ctx *lint.Context) *ScriptGraph {
	g := &ScriptGraph{Graph: NewGraph[*Definition](), latest: make(map[string]string)}

	for _, stmt := range ctx.Statements {
		kind := parser.Classify(stmt)

		var parents []string
		for _, ref := range lint.References(stmt) {
			if id, ok := g.latest[ref.Literal]; ok && !slices.Contains(parents, id) {
				parents = append(parents, id)
			}
		}

		if kind == parser.KindPrint {
			for _, id := range parents {
				node, _ := g.GetNode(id)
				node.Data.Printed = true
			}
			continue
		}

		text := strings.Join(stmt.Texts(), " ") + " ;"
		for _, def := range lint.Definitions(stmt) {
			id := DefinitionID(def.Literal, stmt.Line)
			g.AddNode(id, &Definition{ID: id, Name: def.Literal, Kind: kind.String(), Line: stmt.Line, Statement: text})
			for _, p := range parents {
				// Parents always come from earlier statements, so no loop.
				_ = g.AddEdge(p, id)
			}
			g.latest[def.Literal] = id
		}
	}
	return g
}

// Resolve returns the ID of a definition given either an ID or a name. A
// bare name resolves to its last definition.
func (g *ScriptGraph) Resolve(nameOrID string) (string, bool) {
	if _, ok := g.GetNode(nameOrID); ok {
		return nameOrID, true
	}
	id, ok := g.latest[nameOrID]
	return id, ok
}
