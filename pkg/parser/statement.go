// Package parser turns a token stream into statements and groups the
// operands of logic expressions.
package parser

import (
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// Kind classifies a statement by its shape.
type Kind int

const (
	KindUnused Kind = iota
	KindPrint
	KindInput
	KindAssign
	KindLogic
	KindSetBuilder
	KindMinInsert
)

func (k Kind) String() string {
	switch k {
	case KindPrint:
		return "print"
	case KindInput:
		return "input"
	case KindAssign:
		return "assign"
	case KindLogic:
		return "logic"
	case KindSetBuilder:
		return "set"
	case KindMinInsert:
		return "min"
	default:
		return "unused"
	}
}

// Statement is the token group between two separators.
type Statement struct {
	Tokens []token.Token
	Line   int // 1-based statement counter
}

// Texts returns the literals of the statement tokens.
func (s Statement) Texts() []string {
	return token.Texts(s.Tokens)
}

// Len returns the number of tokens.
func (s Statement) Len() int {
	return len(s.Tokens)
}

// At returns the literal of the i-th token, or "" when out of range.
func (s Statement) At(i int) string {
	if i < 0 || i >= len(s.Tokens) {
		return ""
	}
	return s.Tokens[i].Literal
}

// Pos returns the source position of the first token.
func (s Statement) Pos() token.Position {
	if len(s.Tokens) == 0 {
		return token.Position{}
	}
	return s.Tokens[0].Pos
}

// Classify decides the kind of a statement from its first two tokens.
func Classify(s Statement) Kind {
	switch s.At(0) {
	case "input":
		return KindInput
	case "print":
		return KindPrint
	}
	if s.Len() < 2 {
		return KindUnused
	}
	switch s.At(1) {
	case "and", "or", "not":
		return KindLogic
	case "set":
		return KindSetBuilder
	case "min":
		return KindMinInsert
	default:
		return KindAssign
	}
}
