package lsp

import (
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// Symbol is a name defined somewhere in a script.
type Symbol struct {
	Name      string
	Kind      parser.Kind // statement kind of the first definition
	Def       token.Token
	Statement string
	Line      int // statement number
}

// Detail describes the symbol for completion and hover.
func (s Symbol) Detail() string {
	switch s.Kind {
	case parser.KindInput:
		return "input variable"
	case parser.KindSetBuilder:
		return "truth table"
	default:
		return "variable"
	}
}

// collectSymbols returns the first definition of every name, in script
// order.
func collectSymbols(ctx *lint.Context) []Symbol {
	var out []Symbol
	seen := make(map[string]bool)
	for _, stmt := range ctx.Statements {
		for _, def := range lint.Definitions(stmt) {
			if seen[def.Literal] {
				continue
			}
			seen[def.Literal] = true
			out = append(out, Symbol{
				Name:      def.Literal,
				Kind:      parser.Classify(stmt),
				Def:       def,
				Statement: strings.Join(stmt.Texts(), " ") + " ;",
				Line:      stmt.Line,
			})
		}
	}
	return out
}

func findSymbol(symbols []Symbol, name string) (Symbol, bool) {
	for _, s := range symbols {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}
