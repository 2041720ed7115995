// Package format prints LeapLogic scripts in canonical layout: one
// statement per line, single spaces between tokens, and an explicit
// separator after every statement.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/token"
)

const indentSize = 2

// Printer accumulates formatted statements.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the formatted output.
func (p *Printer) String() string {
	out := strings.TrimRight(p.output.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// words writes tokens separated by single spaces.
func (p *Printer) words(tokens []token.Token) {
	for i, tok := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(tok.Literal)
	}
}

// separator ends a statement.
func (p *Printer) separator(empty bool) {
	if !empty {
		p.space()
	}
	p.write(token.Separator)
	p.writeln()
}
