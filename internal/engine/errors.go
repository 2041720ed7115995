package engine

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/parser"
)

// Error kinds. Every one of them aborts the run.
var (
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrUndefinedVariable   = errors.New("variable not found")
	ErrIllegalToken        = errors.New("illegal token")
	ErrMalformedExpression = parser.ErrMalformedExpression
	ErrNestingTooDeep      = errors.New("expression nested too deeply")
	ErrTooManyInputs       = errors.New("too many truth table inputs")
	ErrInputUnavailable    = errors.New("input unavailable")
)

// Error is a fatal script error tied to a statement.
type Error struct {
	Kind    error
	Line    int
	Token   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Detail())
}

// Detail returns the message without the line prefix.
func (e *Error) Detail() string {
	msg := e.Kind.Error()
	if e.Message != "" {
		msg = e.Message
	}
	if e.Token != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Token)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the kind and the cause, so errors.Is matches either.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newError(kind error, tok string) *Error {
	return &Error{Kind: kind, Token: tok}
}

// Warning kinds. Warnings are reported and never stop the run.
type WarningKind string

const (
	WarnUnusedLine         WarningKind = "unused_line"
	WarnMeaninglessMinterm WarningKind = "meaningless_minterm"
)

func (k WarningKind) message() string {
	switch k {
	case WarnUnusedLine:
		return "Unused line"
	case WarnMeaninglessMinterm:
		return "Meaningless number"
	default:
		return string(k)
	}
}
