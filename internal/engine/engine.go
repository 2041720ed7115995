// Package engine executes LeapLogic scripts. It owns the variable and
// truth-table pools, dispatches statements one at a time and reports
// prints, warnings and errors to a Sink.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// Options configures an Interpreter.
type Options struct {
	// Sink receives prints, warnings and errors (optional, discards if nil)
	Sink Sink
	// Input supplies values for input statements
	Input InputReader
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// MaxDepth bounds expression nesting (DefaultMaxDepth if zero)
	MaxDepth int
	// InputTimeout bounds each input read; zero waits forever
	InputTimeout time.Duration
}

// Stats summarises a run.
type Stats struct {
	Statements int
	Warnings   int
	// Duration is wall time spent executing, excluding input waits.
	Duration  time.Duration
	InputWait time.Duration
}

// Interpreter holds the state of one script run.
type Interpreter struct {
	vars     *VariablePool
	logic    *LogicPool
	eval     *Evaluator
	splitter *parser.Splitter

	sink         Sink
	input        InputReader
	logger       *slog.Logger
	maxDepth     int
	inputTimeout time.Duration

	stats Stats
}

// New creates an interpreter over a token stream.
func New(tokens []token.Token, opts Options) *Interpreter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sink := opts.Sink
	if sink == nil {
		sink = discardSink{}
	}

	vars := NewVariablePool()
	return &Interpreter{
		vars:         vars,
		logic:        NewLogicPool(),
		eval:         NewEvaluator(vars, opts.MaxDepth),
		splitter:     parser.NewSplitter(tokens),
		sink:         sink,
		input:        opts.Input,
		logger:       logger,
		maxDepth:     opts.MaxDepth,
		inputTimeout: opts.InputTimeout,
	}
}

// NewFromSource tokenizes src and creates an interpreter over it.
func NewFromSource(src string, opts Options) *Interpreter {
	return New(token.Tokenize(src), opts)
}

// Run executes every remaining statement. It stops at the first fatal
// error, which has already been reported to the sink.
func (in *Interpreter) Run(ctx context.Context) error {
	start := time.Now()
	waitBefore := in.stats.InputWait

	defer func() {
		in.stats.Duration += time.Since(start) - (in.stats.InputWait - waitBefore)
	}()

	in.logger.Debug("starting run")
	for {
		more, err := in.Step(ctx)
		if err != nil {
			in.logger.Debug("run failed", "line", in.splitter.Line(), "error", err)
			return err
		}
		if !more {
			break
		}
	}
	in.logger.Debug("run completed", "statements", in.stats.Statements, "warnings", in.stats.Warnings)
	return nil
}

// Step executes the next statement. It returns false once the stream is
// exhausted.
func (in *Interpreter) Step(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	stmt, ok := in.splitter.Next()
	if !ok {
		return false, nil
	}
	return true, in.Exec(ctx, stmt)
}

// Feed replaces the remaining stream with tokens; anything not yet
// executed is dropped. Pools and the line counter carry over.
func (in *Interpreter) Feed(tokens []token.Token) {
	in.splitter = parser.NewSplitterAt(tokens, in.splitter.Line())
}

// Exec dispatches a single statement.
func (in *Interpreter) Exec(ctx context.Context, stmt parser.Statement) error {
	kind := parser.Classify(stmt)
	in.stats.Statements++
	in.logger.Debug("executing statement", "line", stmt.Line, "kind", kind.String(), "tokens", stmt.Len())

	var err error
	switch kind {
	case parser.KindInput:
		err = in.execInput(ctx, stmt)
	case parser.KindPrint:
		err = in.execPrint(stmt)
	case parser.KindUnused:
		in.warn(stmt.Line, WarnUnusedLine)
	case parser.KindLogic:
		err = in.execLogic(stmt)
	case parser.KindSetBuilder:
		err = in.execSet(stmt)
	case parser.KindMinInsert:
		err = in.execMin(stmt)
	case parser.KindAssign:
		err = in.execAssign(stmt)
	}

	if err != nil {
		return in.fail(stmt.Line, err)
	}
	return nil
}

// Stats returns counters for the statements executed so far.
func (in *Interpreter) Stats() Stats {
	return in.stats
}

// Reset drops every variable and truth table.
func (in *Interpreter) Reset() {
	in.vars = NewVariablePool()
	in.logic = NewLogicPool()
	in.eval = NewEvaluator(in.vars, in.maxDepth)
}

// Binding is a variable name and its current value.
type Binding struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// Variables returns every bound variable in name order.
func (in *Interpreter) Variables() []Binding {
	names := in.vars.Names()
	out := make([]Binding, 0, len(names))
	for _, name := range names {
		c, _ := in.vars.Lookup(name)
		out = append(out, Binding{Name: name, Value: c.Value()})
	}
	return out
}

// TableInfo summarises a truth table.
type TableInfo struct {
	Name     string   `json:"name"`
	Inputs   int      `json:"inputs"`
	Minterms []uint64 `json:"minterms"`
	Value    bool     `json:"value"`
}

// Tables returns every truth table in name order.
func (in *Interpreter) Tables() []TableInfo {
	names := in.logic.Names()
	out := make([]TableInfo, 0, len(names))
	for _, name := range names {
		l, _ := in.logic.Lookup(name)
		out = append(out, TableInfo{
			Name:     name,
			Inputs:   l.Width(),
			Minterms: l.Minterms(),
			Value:    l.Eval(),
		})
	}
	return out
}

// Lookup resolves name the way print does: variables first, then tables.
func (in *Interpreter) Lookup(name string) (bool, bool) {
	if c, ok := in.vars.Lookup(name); ok {
		return c.Value(), true
	}
	if l, ok := in.logic.Lookup(name); ok {
		return l.Eval(), true
	}
	return false, false
}

func (in *Interpreter) warn(line int, kind WarningKind) {
	in.stats.Warnings++
	in.logger.Debug("warning", "line", line, "kind", string(kind))
	in.sink.Emit(Event{
		Severity: SeverityWarning,
		Line:     line,
		Kind:     string(kind),
		Message:  kind.message(),
	})
}

// fail stamps err with the statement line and reports it.
func (in *Interpreter) fail(line int, err error) error {
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Kind: err}
	}
	if e.Line == 0 {
		e.Line = line
	}
	in.sink.Emit(Event{
		Severity: SeverityError,
		Line:     e.Line,
		Kind:     kindName(e.Kind),
		Message:  e.Detail(),
	})
	return e
}

func kindName(kind error) string {
	switch kind {
	case ErrInvalidIdentifier:
		return "invalid_identifier"
	case ErrUndefinedVariable:
		return "undefined_variable"
	case ErrIllegalToken:
		return "illegal_token"
	case ErrMalformedExpression:
		return "malformed_expression"
	case ErrNestingTooDeep:
		return "nesting_too_deep"
	case ErrTooManyInputs:
		return "too_many_inputs"
	case ErrInputUnavailable:
		return "input_unavailable"
	default:
		return "error"
	}
}
