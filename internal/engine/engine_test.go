package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/testutil"
)

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) prints() []string {
	var out []string
	for _, ev := range r.events {
		if ev.Severity == SeverityInfo {
			out = append(out, ev.Message)
		}
	}
	return out
}

func (r *recorder) bySeverity(sev Severity) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Severity == sev {
			out = append(out, ev)
		}
	}
	return out
}

// scripted returns an InputReader that hands out values in order.
func scripted(values ...string) InputReader {
	return InputFunc(func(_ context.Context, name string) (string, error) {
		if len(values) == 0 {
			return "", errors.New("no more input")
		}
		v := values[0]
		values = values[1:]
		return v, nil
	})
}

func runScript(t *testing.T, src string, inputs ...string) (*Interpreter, *recorder, error) {
	t.Helper()
	rec := &recorder{}
	in := NewFromSource(src, Options{
		Sink:   rec,
		Input:  scripted(inputs...),
		Logger: testutil.NewTestLogger(t),
	})
	err := in.Run(context.Background())
	return in, rec, err
}

func TestRun_Assignments(t *testing.T) {
	in, rec, err := runScript(t, "a 1 ; b 0 ; c a ; print a b c ;")
	require.NoError(t, err)

	assert.Equal(t, []string{"a = 1", "b = 0", "c = 1"}, rec.prints())
	assert.Equal(t, 4, in.Stats().Statements)
	assert.Empty(t, rec.bySeverity(SeverityWarning))
}

func TestRun_AliasKeepsOldCellAfterRebind(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; b a ; a 0 ; print b ;")
	require.NoError(t, err)
	assert.Equal(t, []string{"b = 1"}, rec.prints())
}

func TestRun_AliasSharesCell(t *testing.T) {
	in, _, err := runScript(t, "a 1 ; b a ;")
	require.NoError(t, err)

	ca, _ := in.vars.Lookup("a")
	cb, _ := in.vars.Lookup("b")
	assert.Same(t, ca, cb)
}

func TestRun_LogicStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"and true", "a 1 ; b 1 ; x and a b ; print x", "x = 1"},
		{"and false", "a 1 ; b 0 ; x and a b ; print x", "x = 0"},
		{"or true", "a 0 ; b 1 ; x or a b ; print x", "x = 1"},
		{"or false", "a 0 ; b 0 ; x or a b ; print x", "x = 0"},
		{"not", "a 0 ; x not a ; print x", "x = 1"},
		{"and identity", "x and ; print x", "x = 1"},
		{"or identity", "x or ; print x", "x = 0"},
		{"nested", "a 1 ; b 0 ; c 1 ; x and a [ or b c ] ; print x", "x = 1"},
		{"deep nesting", "a 1 ; b 0 ; x or b [ and a [ not [ or b ] ] ] ; print x", "x = 1"},
		{"bound literal names", "1 0 ; x and 1 ; print x", "x = 0"},
		{"not identity", "x not ; print x", "x = 0"},
		{"result is a new cell", "a 1 ; x and a ; a 0 ; print x", "x = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rec, err := runScript(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, rec.prints())
		})
	}
}

func TestRun_NotIgnoresExtraOperands(t *testing.T) {
	for _, b := range []string{"0", "1"} {
		for _, a := range []string{"0", "1"} {
			src := "a " + a + " ; b " + b + " ; x not a b ; y not a ; print x y"
			_, rec, err := runScript(t, src)
			require.NoError(t, err)
			prints := rec.prints()
			require.Len(t, prints, 2)
			assert.Equal(t, prints[0][len(prints[0])-1], prints[1][len(prints[1])-1], src)
		}
	}

	// Operands after the first are never resolved.
	_, rec, err := runScript(t, "a 1 ; x not a undefined ; print x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 0"}, rec.prints())
}

func TestRun_TruthTableTwoInputs(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"0", "0", "x = 1"},
		{"0", "1", "x = 0"},
		{"1", "0", "x = 0"},
		{"1", "1", "x = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.a+tt.b, func(t *testing.T) {
			src := "a " + tt.a + " ; b " + tt.b + " ; x set a b ; x min 0 ; print x"
			_, rec, err := runScript(t, src)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, rec.prints())
		})
	}
}

func TestRun_MintermPackingIsMSBFirst(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; b 0 ; c 1 ; f set a b c ; g set a b c ; f min 5 ; g min 3 ; print f g")
	require.NoError(t, err)
	assert.Equal(t, []string{"f = 1", "g = 0"}, rec.prints())
}

func TestRun_OutOfRangeMinterm(t *testing.T) {
	for _, combo := range [][2]string{{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"}} {
		src := "a " + combo[0] + " ; b " + combo[1] + " ; x set a b ; x min 7 ; print x"
		_, rec, err := runScript(t, src)
		require.NoError(t, err)

		warnings := rec.bySeverity(SeverityWarning)
		require.Len(t, warnings, 1)
		assert.Equal(t, string(WarnMeaninglessMinterm), warnings[0].Kind)
		assert.Equal(t, 4, warnings[0].Line)
		assert.Equal(t, []string{"x = 0"}, rec.prints())
	}
}

func TestRun_NegativeAndOverflowingMinterms(t *testing.T) {
	in, rec, err := runScript(t, "a 1 ; x set a ; x min -1 99999999999999999999 1")
	require.NoError(t, err)
	assert.Len(t, rec.bySeverity(SeverityWarning), 2)

	tables := in.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, []uint64{1}, tables[0].Minterms)
	assert.True(t, tables[0].Value)
}

func TestRun_SetReplacesTable(t *testing.T) {
	_, rec, err := runScript(t, "p 1 ; a set p ; a min 1 ; print a ; a set p ; print a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a = 1", "a = 0"}, rec.prints())
}

func TestRun_TableKeepsCapturedCells(t *testing.T) {
	// Rebinding an input after set leaves the table reading the old cell.
	_, rec, err := runScript(t, "a 0 ; f set a ; f min 1 ; a 1 ; print f ; input a ; print f", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"f = 0", "f = 0"}, rec.prints())

	// Aliases share the cell, so a table built over an alias sees it.
	_, rec, err = runScript(t, "a 0 ; b a ; f set b ; f min 0 ; print f")
	require.NoError(t, err)
	assert.Equal(t, []string{"f = 1"}, rec.prints())
}

func TestRun_TableSnapshotAssignment(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; f set a ; f min 1 ; s f ; print s")
	require.NoError(t, err)
	assert.Equal(t, []string{"s = 1"}, rec.prints())
}

func TestRun_PrintPrefersVariables(t *testing.T) {
	_, rec, err := runScript(t, "a 0 ; f set a ; f min 0 ; f 0 ; print f")
	require.NoError(t, err)
	assert.Equal(t, []string{"f = 0"}, rec.prints())
}

func TestRun_Input(t *testing.T) {
	_, rec, err := runScript(t, "input a b c ; print a b c", "1", " 1 \n", "yes")
	require.NoError(t, err)
	assert.Equal(t, []string{"a = 1", "b = 1", "c = 0"}, rec.prints())
}

func TestRun_InputRebindsName(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; b a ; input a ; print a b", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"a = 0", "b = 1"}, rec.prints())
}

func TestRun_UnusedLine(t *testing.T) {
	in, rec, err := runScript(t, "a ; ; b 1")
	require.NoError(t, err)

	warnings := rec.bySeverity(SeverityWarning)
	require.Len(t, warnings, 2)
	assert.Equal(t, 1, warnings[0].Line)
	assert.Equal(t, 2, warnings[1].Line)
	assert.Equal(t, string(WarnUnusedLine), warnings[0].Kind)
	assert.Equal(t, 2, in.Stats().Warnings)

	_, ok := in.vars.Lookup("a")
	assert.False(t, ok)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		inputs   []string
		wantKind error
		wantLine int
	}{
		{"print undefined", "print z", nil, ErrUndefinedVariable, 1},
		{"assign undefined", "a 1 ; b c", nil, ErrUndefinedVariable, 2},
		{"assign illegal number", "a 2", nil, ErrIllegalToken, 1},
		{"logic undefined", "x and a", nil, ErrUndefinedVariable, 1},
		{"logic illegal number", "x or 5", nil, ErrIllegalToken, 1},
		{"set undefined input", "a 1 ; f set a b", nil, ErrUndefinedVariable, 2},
		{"min undefined table", "f min 1", nil, ErrUndefinedVariable, 1},
		{"min non numeric", "a 1 ; f set a ; f min one", nil, ErrIllegalToken, 3},
		{"input digit first", "input 1a", nil, ErrInvalidIdentifier, 1},
		{"input keyword", "input and", nil, ErrInvalidIdentifier, 1},
		{"input symbol", "input a-b", nil, ErrInvalidIdentifier, 1},
		{"input exhausted", "input a", nil, ErrInputUnavailable, 1},
		{"unbalanced close", "a 1 ; x and a ]", nil, ErrMalformedExpression, 2},
		{"unclosed bracket", "a 1 ; x and [ or a", nil, ErrMalformedExpression, 2},
		{"group without operator", "a 1 ; x and [ a ]", nil, ErrMalformedExpression, 2},
		{"empty group", "x and [ ]", nil, ErrMalformedExpression, 1},
		{"literal operand unbound", "x and 1", nil, ErrUndefinedVariable, 1},
		{"literal operand in group", "a 1 ; x and a [ or 0 ]", nil, ErrUndefinedVariable, 2},
		{"min signed", "a 1 ; f set a ; f min +1", nil, ErrIllegalToken, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rec, err := runScript(t, tt.src, tt.inputs...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var scriptErr *Error
			require.ErrorAs(t, err, &scriptErr)
			assert.Equal(t, tt.wantLine, scriptErr.Line)

			errs := rec.bySeverity(SeverityError)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantLine, errs[0].Line)
		})
	}
}

func TestRun_ErrorStopsRun(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; print a ; print z ; print a")
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Equal(t, []string{"a = 1"}, rec.prints())
}

func TestRun_PrintUndefinedPrintsNothingForIt(t *testing.T) {
	_, rec, err := runScript(t, "a 1 ; print a z")
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Equal(t, []string{"a = 1"}, rec.prints())
}

func TestRun_NestingLimit(t *testing.T) {
	src := "a 1 ; x and [ and [ and [ and a ] ] ]"

	in := NewFromSource(src, Options{MaxDepth: 3})
	err := in.Run(context.Background())
	assert.ErrorIs(t, err, ErrNestingTooDeep)

	in = NewFromSource(src, Options{MaxDepth: 4})
	assert.NoError(t, in.Run(context.Background()))
}

func TestRun_TooManyInputs(t *testing.T) {
	src := "a 1 ; f set"
	for i := 0; i < MaxInputs+1; i++ {
		src += " a"
	}
	_, _, err := runScript(t, src)
	assert.ErrorIs(t, err, ErrTooManyInputs)
}

func TestRun_InputTimeout(t *testing.T) {
	blocking := InputFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	in := NewFromSource("input a", Options{Input: blocking, InputTimeout: 10 * time.Millisecond})
	err := in.Run(context.Background())
	require.ErrorIs(t, err, ErrInputUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := NewFromSource("a 1 ; print a", Options{})
	assert.ErrorIs(t, in.Run(ctx), context.Canceled)
}

func TestRun_DurationExcludesInputWait(t *testing.T) {
	slow := InputFunc(func(_ context.Context, _ string) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "1", nil
	})

	in := NewFromSource("input a ; print a", Options{Input: slow})
	require.NoError(t, in.Run(context.Background()))

	stats := in.Stats()
	assert.GreaterOrEqual(t, stats.InputWait, 50*time.Millisecond)
	assert.Less(t, stats.Duration, stats.InputWait)
}

func TestInterpreter_FeedKeepsState(t *testing.T) {
	rec := &recorder{}
	in := NewFromSource("a 1 ;", Options{Sink: rec})
	require.NoError(t, in.Run(context.Background()))

	in.Feed(tokenize("b a ; print b"))
	require.NoError(t, in.Run(context.Background()))
	assert.Equal(t, []string{"b = 1"}, rec.prints())
	assert.Equal(t, 3, rec.events[0].Line)
}

func TestInterpreter_FeedDropsUnexecutedStatements(t *testing.T) {
	rec := &recorder{}
	in := NewFromSource("a 1 ; print z ; print a ;", Options{Sink: rec})
	require.ErrorIs(t, in.Run(context.Background()), ErrUndefinedVariable)

	in.Feed(tokenize("b a ; print b"))
	require.NoError(t, in.Run(context.Background()))
	assert.Equal(t, []string{"b = 1"}, rec.prints())
}

func TestInterpreter_Introspection(t *testing.T) {
	in, _, err := runScript(t, "b 0 ; a 1 ; f set a b ; f min 2 3")
	require.NoError(t, err)

	assert.Equal(t, []Binding{{Name: "a", Value: true}, {Name: "b", Value: false}}, in.Variables())
	assert.Equal(t, []TableInfo{{Name: "f", Inputs: 2, Minterms: []uint64{2, 3}, Value: true}}, in.Tables())

	v, ok := in.Lookup("f")
	assert.True(t, ok)
	assert.True(t, v)

	in.Reset()
	assert.Empty(t, in.Variables())
	assert.Empty(t, in.Tables())
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: ErrUndefinedVariable, Line: 3, Token: "z"}
	assert.Equal(t, `line 3: variable not found: "z"`, err.Error())
	assert.Equal(t, `variable not found: "z"`, err.Detail())
}
