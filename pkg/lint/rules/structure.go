package rules

import (
	"errors"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
)

func init() {
	lint.Register(UnusedLine)
	lint.Register(MalformedExpression)
}

// UnusedLine flags statements that match no statement form.
var UnusedLine = lint.RuleDef{
	ID:          "LL01",
	Name:        "structure.unused_line",
	Group:       "structure",
	Description: "Statement does not match any statement form and is ignored.",
	Severity:    lint.SeverityWarning,
	Check:       checkUnusedLine,
	BadExample:  "a ;",
	GoodExample: "a 1 ;",
}

func checkUnusedLine(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, stmt := range ctx.Statements {
		if parser.Classify(stmt) != parser.KindUnused {
			continue
		}
		msg := "unused line"
		if stmt.Len() == 0 {
			msg = "empty statement"
		}
		diags = append(diags, ctx.StatementDiagnostic(i, msg))
	}
	return diags
}

// MalformedExpression flags logic statements whose brackets do not form
// valid sub-expressions.
var MalformedExpression = lint.RuleDef{
	ID:          "LL02",
	Name:        "structure.malformed_expression",
	Group:       "structure",
	Description: "Brackets must balance and every bracketed group must start with and, or or not.",
	Severity:    lint.SeverityError,
	Check:       checkMalformedExpression,
	BadExample:  "x and a [ b c ] ;",
	GoodExample: "x and a [ or b c ] ;",
}

func checkMalformedExpression(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, stmt := range ctx.Statements {
		if parser.Classify(stmt) != parser.KindLogic {
			continue
		}
		err := parser.CheckExpression(stmt.Texts()[1:])
		if err == nil {
			continue
		}
		msg := err.Error()
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			msg = "malformed expression: " + pe.Message
		}
		diags = append(diags, ctx.StatementDiagnostic(i, msg))
	}
	return diags
}
