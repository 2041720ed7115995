package parser

import (
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// Word is one operand unit of a logic expression: a single token, or a
// bracket-balanced span including its outer brackets.
type Word []string

// IsGroup reports whether the word is a bracketed span.
func (w Word) IsGroup() bool {
	return len(w) > 0 && w[0] == token.LBracket
}

// Inner returns the tokens between the outer brackets of a group.
func (w Word) Inner() []string {
	if !w.IsGroup() || len(w) < 2 {
		return nil
	}
	return w[1 : len(w)-1]
}

// Head returns the first token of the word.
func (w Word) Head() string {
	if len(w) == 0 {
		return ""
	}
	return w[0]
}

// Group splits tokens into top-level words. Brackets may nest; each
// outermost span becomes a single word. Unbalanced brackets are reported
// as a ParseError wrapping ErrMalformedExpression.
func Group(tokens []string) ([]Word, error) {
	var words []Word
	var buf Word
	depth := 0

	for _, tok := range tokens {
		switch tok {
		case token.LBracket:
			depth++
			buf = append(buf, tok)
		case token.RBracket:
			if depth == 0 {
				return nil, &ParseError{Message: fmt.Sprintf(ErrUnexpectedClose, token.RBracket, token.LBracket)}
			}
			depth--
			buf = append(buf, tok)
			if depth == 0 {
				words = append(words, buf)
				buf = nil
			}
		default:
			if depth == 0 {
				words = append(words, Word{tok})
				continue
			}
			buf = append(buf, tok)
		}
	}

	if depth != 0 {
		return nil, &ParseError{Message: fmt.Sprintf(ErrUnclosedBracket, token.LBracket)}
	}
	return words, nil
}

// CheckExpression validates the bracket structure of a logic expression
// without evaluating it. tokens start with the operator keyword.
func CheckExpression(tokens []string) error {
	words, err := Group(tokens)
	if err != nil {
		return err
	}
	return checkWords(words)
}

func checkWords(words []Word) error {
	if len(words) == 0 {
		return &ParseError{Message: ErrEmptyBrackets}
	}
	if head := words[0]; head.IsGroup() || !token.IsOperator(head.Head()) {
		return &ParseError{Message: fmt.Sprintf(ErrMissingOperator, head.Head())}
	}
	for _, w := range words[1:] {
		if !w.IsGroup() {
			continue
		}
		if err := CheckExpression(w.Inner()); err != nil {
			return err
		}
	}
	return nil
}
