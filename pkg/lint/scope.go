package lint

import (
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// Scope tracks the names a script has defined up to some statement,
// following the same resolution order as the interpreter.
type Scope struct {
	vars   map[string]bool
	tables map[string]int // name to input count
}

func newScope() *Scope {
	return &Scope{vars: make(map[string]bool), tables: make(map[string]int)}
}

// IsVariable reports whether name is bound in the variable pool.
func (s *Scope) IsVariable(name string) bool {
	return s.vars[name]
}

// TableWidth returns the input count of a truth table.
func (s *Scope) TableWidth(name string) (int, bool) {
	w, ok := s.tables[name]
	return w, ok
}

// IsDefined reports whether name resolves to a variable or a truth table.
func (s *Scope) IsDefined(name string) bool {
	_, table := s.tables[name]
	return s.vars[name] || table
}

// apply records the definitions made by stmt.
func (s *Scope) apply(stmt parser.Statement) {
	texts := stmt.Texts()
	if parser.Classify(stmt) == parser.KindSetBuilder {
		s.tables[texts[0]] = len(texts) - 2
		return
	}
	for _, def := range Definitions(stmt) {
		s.vars[def.Literal] = true
	}
}

// Walk calls fn for every statement with the scope as it stands before
// that statement runs.
func Walk(ctx *Context, fn func(i int, stmt parser.Statement, scope *Scope)) {
	scope := newScope()
	for i, stmt := range ctx.Statements {
		fn(i, stmt, scope)
		scope.apply(stmt)
	}
}

// References returns the tokens stmt reads by name. Logic statements whose
// brackets do not balance yield nothing.
func References(stmt parser.Statement) []token.Token {
	toks := stmt.Tokens
	switch parser.Classify(stmt) {
	case parser.KindPrint:
		return toks[1:]
	case parser.KindSetBuilder:
		return toks[2:]
	case parser.KindMinInsert:
		return toks[:1]
	case parser.KindAssign:
		if token.Lookup(toks[1].Literal) == token.LITERAL {
			return nil
		}
		return toks[1:2]
	case parser.KindLogic:
		if parser.CheckExpression(stmt.Texts()[1:]) != nil {
			return nil
		}
		return operands(toks[1:])
	}
	return nil
}

// Definitions returns the tokens stmt binds. Invalid input targets are
// skipped.
func Definitions(stmt parser.Statement) []token.Token {
	switch parser.Classify(stmt) {
	case parser.KindInput:
		var out []token.Token
		for _, tok := range stmt.Tokens[1:] {
			if token.IsValidName(tok.Literal) {
				out = append(out, tok)
			}
		}
		return out
	case parser.KindLogic, parser.KindAssign, parser.KindSetBuilder:
		return stmt.Tokens[:1]
	}
	return nil
}

// operands picks the operands out of a well-formed expression. The first
// word of the expression and of every bracket is the operator; every other
// leaf, 0 and 1 included, is a variable name.
func operands(toks []token.Token) []token.Token {
	var out []token.Token
	expectOperator := true
	for _, tok := range toks {
		switch {
		case tok.Literal == token.LBracket:
			expectOperator = true
		case tok.Literal == token.RBracket:
		case expectOperator:
			expectOperator = false
		default:
			out = append(out, tok)
		}
	}
	return out
}
