package lint

import (
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// RuleDef is a data-driven rule definition.
// Rules are stateless; all context comes via the Check function parameter.
type RuleDef struct {
	ID          string   // Unique identifier, e.g., "LL01"
	Name        string   // Human-readable name, e.g., "structure.unused_line"
	Group       string   // Category, e.g., "structure", "reference"
	Description string   // Human-readable description
	Severity    Severity // Default severity
	Check       CheckFunc

	BadExample  string
	GoodExample string
}

// CheckFunc analyzes a script and returns diagnostics.
type CheckFunc func(ctx *Context) []Diagnostic

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Line     int            `json:"line"` // statement number
	Pos      token.Position `json:"pos"`
	EndPos   token.Position `json:"end_pos"`
}

// Context is the input handed to every rule.
type Context struct {
	Statements []parser.Statement

	// anchors holds a source position for each statement, including
	// empty ones, so diagnostics always point somewhere.
	anchors []token.Position
}

// NewContext splits src into statements.
func NewContext(src string) *Context {
	tokens := token.Tokenize(src)
	stmts := parser.Split(tokens)

	anchors := make([]token.Position, len(stmts))
	last := token.Position{Line: 1, Column: 1}
	for i, stmt := range stmts {
		if stmt.Len() > 0 {
			last = stmt.Pos()
		}
		anchors[i] = last
	}
	return &Context{Statements: stmts, anchors: anchors}
}

// StatementDiagnostic reports a problem spanning the whole statement at
// index i.
func (c *Context) StatementDiagnostic(i int, msg string) Diagnostic {
	stmt := c.Statements[i]
	d := Diagnostic{Message: msg, Line: stmt.Line, Pos: c.anchors[i], EndPos: c.anchors[i]}
	if n := stmt.Len(); n > 0 {
		d.EndPos = endOf(stmt.Tokens[n-1])
	}
	return d
}

// TokenDiagnostic reports a problem with a single token of the statement
// at index i.
func (c *Context) TokenDiagnostic(i int, tok token.Token, msg string) Diagnostic {
	return Diagnostic{Message: msg, Line: c.Statements[i].Line, Pos: tok.Pos, EndPos: endOf(tok)}
}

func endOf(tok token.Token) token.Position {
	return token.Position{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column + len(tok.Literal),
		Offset: tok.Pos.Offset + len(tok.Literal),
	}
}
