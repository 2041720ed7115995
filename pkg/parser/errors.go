package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// ErrMalformedExpression reports unbalanced brackets or a bracketed
// sub-expression that does not start with an operator keyword.
var ErrMalformedExpression = errors.New("malformed expression")

// ParseError represents a structural error in a statement.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap lets errors.Is match ErrMalformedExpression.
func (e *ParseError) Unwrap() error {
	return ErrMalformedExpression
}

// Common error messages
const (
	ErrUnexpectedClose = "unexpected %q without matching %q"
	ErrUnclosedBracket = "unclosed %q"
	ErrMissingOperator = "sub-expression must start with and, or or not, got %q"
	ErrEmptyBrackets   = "empty brackets"
)
