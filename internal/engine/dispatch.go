package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// execInput reads a value for every target, binding each to a new cell.
func (in *Interpreter) execInput(ctx context.Context, stmt parser.Statement) error {
	names := stmt.Texts()[1:]
	for _, name := range names {
		if !token.IsValidName(name) {
			return newError(ErrInvalidIdentifier, name)
		}
	}

	for _, name := range names {
		raw, err := in.readInput(ctx, name)
		if err != nil {
			return &Error{Kind: ErrInputUnavailable, Token: name, Cause: err}
		}
		in.vars.Bind(name, parseBool(raw))
	}
	return nil
}

func (in *Interpreter) readInput(ctx context.Context, name string) (string, error) {
	if in.input == nil {
		return "", errors.New("no input source")
	}

	if in.inputTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.inputTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := in.input.ReadInput(ctx, name)
	in.stats.InputWait += time.Since(start)
	return raw, err
}

// parseBool maps "1" to true and anything else to false.
func parseBool(raw string) bool {
	return strings.TrimSpace(raw) == "1"
}

// execPrint emits name = value for every target.
func (in *Interpreter) execPrint(stmt parser.Statement) error {
	for _, name := range stmt.Texts()[1:] {
		v, ok := in.Lookup(name)
		if !ok {
			return newError(ErrUndefinedVariable, name)
		}
		value := v
		in.sink.Emit(Event{
			Severity: SeverityInfo,
			Line:     stmt.Line,
			Message:  fmt.Sprintf("%s = %s", name, bit(v)),
			Name:     name,
			Value:    &value,
		})
	}
	return nil
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// execLogic evaluates the expression after the target and binds the result.
func (in *Interpreter) execLogic(stmt parser.Statement) error {
	tokens := stmt.Texts()
	v, err := in.eval.EvalTokens(tokens[1:])
	if err != nil {
		return err
	}
	in.vars.Bind(tokens[0], v)
	return nil
}

// execSet creates or replaces a truth table over existing variables.
func (in *Interpreter) execSet(stmt parser.Statement) error {
	tokens := stmt.Texts()
	names := tokens[2:]
	if len(names) > MaxInputs {
		return &Error{
			Kind:    ErrTooManyInputs,
			Token:   tokens[0],
			Message: fmt.Sprintf("truth table has %d inputs, at most %d are supported", len(names), MaxInputs),
		}
	}

	inputs := make([]*Cell, 0, len(names))
	for _, name := range names {
		c, ok := in.vars.Lookup(name)
		if !ok {
			return newError(ErrUndefinedVariable, name)
		}
		inputs = append(inputs, c)
	}
	in.logic.Define(tokens[0], NewLogic(inputs))
	return nil
}

// execMin adds minterms to an existing truth table.
func (in *Interpreter) execMin(stmt parser.Statement) error {
	tokens := stmt.Texts()
	l, ok := in.logic.Lookup(tokens[0])
	if !ok {
		return newError(ErrUndefinedVariable, tokens[0])
	}

	for _, raw := range tokens[2:] {
		m, err := parseMinterm(raw)
		if err != nil {
			return err
		}
		if !l.Insert(m) {
			in.warn(stmt.Line, WarnMeaninglessMinterm)
		}
	}
	return nil
}

// parseMinterm parses a decimal minterm: digits with an optional leading
// minus. Values that do not fit in int64 come back as -1 so the caller
// reports them as out of range.
func parseMinterm(raw string) (int64, error) {
	if !token.IsNumber(strings.TrimPrefix(raw, "-")) {
		return 0, newError(ErrIllegalToken, raw)
	}
	m, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return m, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return -1, nil
	}
	return 0, newError(ErrIllegalToken, raw)
}

// execAssign binds the target to a literal, an alias, or a table snapshot.
func (in *Interpreter) execAssign(stmt parser.Statement) error {
	dst, src := stmt.At(0), stmt.At(1)

	if token.Lookup(src) == token.LITERAL {
		in.vars.Bind(dst, src == "1")
		return nil
	}
	if in.vars.Alias(dst, src) {
		return nil
	}
	if l, ok := in.logic.Lookup(src); ok {
		in.vars.Bind(dst, l.Eval())
		return nil
	}
	if token.IsNumber(src) {
		return newError(ErrIllegalToken, src)
	}
	return newError(ErrUndefinedVariable, src)
}
