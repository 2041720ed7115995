package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

func init() {
	lint.Register(MeaninglessMinterm)
	lint.Register(IllegalNumber)
}

// MeaninglessMinterm flags minterms outside the range of their truth table.
var MeaninglessMinterm = lint.RuleDef{
	ID:          "LL06",
	Name:        "literal.meaningless_minterm",
	Group:       "literal",
	Description: "Minterms must lie between 0 and 2^n-1 for a table with n inputs; others are ignored.",
	Severity:    lint.SeverityWarning,
	Check:       checkMeaninglessMinterm,
	BadExample:  "t set a b ; t min 4 ;",
	GoodExample: "t set a b ; t min 3 ;",
}

func checkMeaninglessMinterm(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	lint.Walk(ctx, func(i int, stmt parser.Statement, scope *lint.Scope) {
		if parser.Classify(stmt) != parser.KindMinInsert {
			return
		}
		width, ok := scope.TableWidth(stmt.At(0))
		if !ok {
			return
		}
		for _, tok := range stmt.Tokens[2:] {
			m, ok := parseMinterm(tok.Literal)
			if !ok || mintermInRange(m, width) {
				continue
			}
			diags = append(diags, ctx.TokenDiagnostic(i, tok,
				fmt.Sprintf("minterm %s is out of range for %d input(s)", tok.Literal, width)))
		}
	})
	return diags
}

// parseMinterm parses a decimal minterm the way the interpreter does.
// Values that overflow int64 come back as -1; ok is false when raw is not
// an optionally negative run of digits.
func parseMinterm(raw string) (int64, bool) {
	if !token.IsNumber(strings.TrimPrefix(raw, "-")) {
		return 0, false
	}
	m, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return m, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return -1, true
	}
	return 0, false
}

func mintermInRange(m int64, width int) bool {
	if m < 0 {
		return false
	}
	if width >= 63 {
		return true
	}
	return m <= int64(1)<<width-1
}

// IllegalNumber flags unbound numbers read as values and minterms that are
// not numbers.
var IllegalNumber = lint.RuleDef{
	ID:          "LL07",
	Name:        "literal.illegal_token",
	Group:       "literal",
	Description: "Numbers other than 0 and 1 can only be read after being bound; minterms must be decimal numbers.",
	Severity:    lint.SeverityError,
	Check:       checkIllegalNumber,
	BadExample:  "x and a 2 ;",
	GoodExample: "x and a b ;",
}

func checkIllegalNumber(ctx *lint.Context) []lint.Diagnostic {
	var diags []lint.Diagnostic
	illegal := func(i int, tok token.Token) {
		diags = append(diags, ctx.TokenDiagnostic(i, tok, fmt.Sprintf("illegal token: %q", tok.Literal)))
	}

	// A number that was bound as a name earlier resolves like any other name.
	lint.Walk(ctx, func(i int, stmt parser.Statement, scope *lint.Scope) {
		switch parser.Classify(stmt) {
		case parser.KindAssign:
			tok := stmt.Tokens[1]
			if token.Lookup(tok.Literal) == token.NUMBER && !scope.IsDefined(tok.Literal) {
				illegal(i, tok)
			}
		case parser.KindLogic:
			for _, tok := range lint.References(stmt) {
				if token.Lookup(tok.Literal) == token.NUMBER && !scope.IsVariable(tok.Literal) {
					illegal(i, tok)
				}
			}
		case parser.KindMinInsert:
			for _, tok := range stmt.Tokens[2:] {
				if _, ok := parseMinterm(tok.Literal); !ok {
					illegal(i, tok)
				}
			}
		}
	})
	return diags
}
