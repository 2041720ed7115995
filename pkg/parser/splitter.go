package parser

import "github.com/leapstack-labs/leaplogic/pkg/token"

// Splitter walks a token stream one statement at a time.
type Splitter struct {
	tokens []token.Token
	pos    int
	line   int
}

// NewSplitter creates a splitter positioned at the start of tokens.
func NewSplitter(tokens []token.Token) *Splitter {
	return &Splitter{tokens: tokens}
}

// NewSplitterAt creates a splitter whose first statement is numbered
// line+1. It lets an interactive session keep counting across inputs.
func NewSplitterAt(tokens []token.Token, line int) *Splitter {
	return &Splitter{tokens: tokens, line: line}
}

// Next returns the next statement. The separator that ends it is consumed
// and not included. It returns false once the stream is exhausted.
func (s *Splitter) Next() (Statement, bool) {
	if s.pos >= len(s.tokens) {
		return Statement{}, false
	}

	start := s.pos
	end := len(s.tokens)
	for i := start; i < len(s.tokens); i++ {
		if s.tokens[i].Literal == token.Separator {
			end = i
			break
		}
	}

	s.pos = end + 1
	s.line++

	stmt := Statement{Line: s.line}
	if end > start {
		stmt.Tokens = s.tokens[start:end:end]
	}
	return stmt, true
}

// Done reports whether every token has been consumed.
func (s *Splitter) Done() bool {
	return s.pos >= len(s.tokens)
}

// Line returns the number of statements returned so far.
func (s *Splitter) Line() int {
	return s.line
}

// Split returns every statement of tokens.
func Split(tokens []token.Token) []Statement {
	var stmts []Statement
	sp := NewSplitter(tokens)
	for {
		stmt, ok := sp.Next()
		if !ok {
			return stmts
		}
		stmts = append(stmts, stmt)
	}
}
