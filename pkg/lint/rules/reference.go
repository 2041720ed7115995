package rules

import (
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

func init() {
	lint.Register(InvalidName)
	lint.Register(UndefinedName)
	lint.Register(UnusedVariable)
}

// InvalidName flags input targets that cannot name a variable.
var InvalidName = lint.RuleDef{
	ID:          "LL03",
	Name:        "reference.invalid_name",
	Group:       "reference",
	Description: "Input targets must be identifiers and must not be keywords.",
	Severity:    lint.SeverityError,
	Check:       checkInvalidName,
	BadExample:  "input a min ;",
	GoodExample: "input a m ;",
}

func checkInvalidName(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, stmt := range ctx.Statements {
		if parser.Classify(stmt) != parser.KindInput {
			continue
		}
		for _, tok := range stmt.Tokens[1:] {
			if !token.IsValidName(tok.Literal) {
				diags = append(diags, ctx.TokenDiagnostic(i, tok, fmt.Sprintf("invalid identifier %q", tok.Literal)))
			}
		}
	}
	return diags
}

// UndefinedName flags reads of names that are not defined by any earlier
// statement.
var UndefinedName = lint.RuleDef{
	ID:          "LL04",
	Name:        "reference.undefined",
	Group:       "reference",
	Description: "Every name read by a statement must be defined by an earlier statement.",
	Severity:    lint.SeverityError,
	Check:       checkUndefinedName,
	BadExample:  "x and a b ;",
	GoodExample: "input a b ; x and a b ;",
}

func checkUndefinedName(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	lint.Walk(ctx, func(i int, stmt parser.Statement, scope *lint.Scope) {
		kind := parser.Classify(stmt)
		for _, ref := range lint.References(stmt) {
			switch kind {
			case parser.KindMinInsert:
				if _, ok := scope.TableWidth(ref.Literal); ok {
					continue
				}
				diags = append(diags, ctx.TokenDiagnostic(i, ref, fmt.Sprintf("truth table not found: %q", ref.Literal)))
				continue
			case parser.KindLogic, parser.KindSetBuilder:
				if scope.IsVariable(ref.Literal) {
					continue
				}
			default:
				if scope.IsDefined(ref.Literal) {
					continue
				}
			}
			// Unbound numbers in these positions are LL07's.
			if kind != parser.KindSetBuilder && kind != parser.KindPrint && token.Lookup(ref.Literal) == token.NUMBER {
				continue
			}
			diags = append(diags, ctx.TokenDiagnostic(i, ref, fmt.Sprintf("variable not found: %q", ref.Literal)))
		}
	})
	return diags
}

// UnusedVariable flags names that are defined but never read.
var UnusedVariable = lint.RuleDef{
	ID:          "LL05",
	Name:        "reference.unused",
	Group:       "reference",
	Description: "Defined names that are never printed or used by another statement.",
	Severity:    lint.SeverityHint,
	Check:       checkUnusedVariable,
	BadExample:  "input a b ; print a ;",
	GoodExample: "input a b ; print a b ;",
}

func checkUnusedVariable(ctx *lint.Context) []lint.Diagnostic {
	read := make(map[string]bool)
	for _, stmt := range ctx.Statements {
		for _, ref := range lint.References(stmt) {
			read[ref.Literal] = true
		}
	}

	var diags []lint.Diagnostic
	seen := make(map[string]bool)
	for i, stmt := range ctx.Statements {
		for _, def := range lint.Definitions(stmt) {
			if read[def.Literal] || seen[def.Literal] {
				continue
			}
			seen[def.Literal] = true
			diags = append(diags, ctx.TokenDiagnostic(i, def, fmt.Sprintf("%q is never used", def.Literal)))
		}
	}
	return diags
}
