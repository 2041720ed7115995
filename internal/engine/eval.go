package engine

import (
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// DefaultMaxDepth bounds bracket nesting in logic expressions.
const DefaultMaxDepth = 256

// Evaluator computes logic expressions against a variable pool.
type Evaluator struct {
	vars     *VariablePool
	maxDepth int
}

// NewEvaluator creates an evaluator. maxDepth <= 0 selects DefaultMaxDepth.
func NewEvaluator(vars *VariablePool, maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Evaluator{vars: vars, maxDepth: maxDepth}
}

// EvalTokens groups tokens and evaluates them. tokens start with the
// operator keyword.
func (e *Evaluator) EvalTokens(tokens []string) (bool, error) {
	words, err := parser.Group(tokens)
	if err != nil {
		return false, malformed(err)
	}
	return e.eval(words, 1)
}

// Eval evaluates grouped words. The first word is the operator keyword.
func (e *Evaluator) Eval(words []parser.Word) (bool, error) {
	return e.eval(words, 1)
}

func (e *Evaluator) eval(words []parser.Word, depth int) (bool, error) {
	if depth > e.maxDepth {
		return false, &Error{Kind: ErrNestingTooDeep, Message: fmt.Sprintf("expression nested deeper than %d levels", e.maxDepth)}
	}
	if len(words) == 0 {
		return false, malformed(&parser.ParseError{Message: parser.ErrEmptyBrackets})
	}

	head := words[0]
	if head.IsGroup() || !token.IsOperator(head.Head()) {
		return false, malformed(&parser.ParseError{Message: fmt.Sprintf(parser.ErrMissingOperator, head.Head())})
	}

	switch head.Head() {
	case "not":
		// Only the first operand counts; a bare not is false.
		if len(words) < 2 {
			return false, nil
		}
		v, err := e.operand(words[1], depth)
		if err != nil {
			return false, err
		}
		return !v, nil

	case "and":
		acc := true
		for _, w := range words[1:] {
			v, err := e.operand(w, depth)
			if err != nil {
				return false, err
			}
			acc = acc && v
		}
		return acc, nil

	default: // or
		acc := false
		for _, w := range words[1:] {
			v, err := e.operand(w, depth)
			if err != nil {
				return false, err
			}
			acc = acc || v
		}
		return acc, nil
	}
}

func (e *Evaluator) operand(w parser.Word, depth int) (bool, error) {
	if w.IsGroup() {
		sub, err := parser.Group(w.Inner())
		if err != nil {
			return false, malformed(err)
		}
		return e.eval(sub, depth+1)
	}

	// Leaves are always pool names, including 0 and 1.
	name := w.Head()
	c, ok := e.vars.Lookup(name)
	if ok {
		return c.Value(), nil
	}
	if token.Lookup(name) == token.NUMBER {
		return false, &Error{Kind: ErrIllegalToken, Token: name}
	}
	return false, &Error{Kind: ErrUndefinedVariable, Token: name}
}

func malformed(cause error) *Error {
	return &Error{Kind: ErrMalformedExpression, Cause: cause}
}
