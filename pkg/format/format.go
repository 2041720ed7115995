package format

import (
	"github.com/leapstack-labs/leaplogic/pkg/parser"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// DefaultWidth is the line width above which bracketed groups in logic
// statements are broken over several lines.
const DefaultWidth = 80

// Options controls formatting.
type Options struct {
	// Width is the longest single-line logic statement; 0 uses DefaultWidth,
	// a negative value never breaks lines.
	Width int
}

// Source formats a script with default options.
func Source(src string) string {
	return Format(src, Options{})
}

// Format re-prints src so that every statement sits on its own line.
// Statement order and count are preserved, so statement numbers in
// diagnostics are unchanged; empty statements print as a lone separator.
func Format(src string, opts Options) string {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}

	p := newPrinter()
	for _, stmt := range parser.Split(token.Tokenize(src)) {
		if stmt.Len() == 0 {
			p.separator(true)
			continue
		}
		if width > 0 && parser.Classify(stmt) == parser.KindLogic && lineWidth(stmt.Tokens) > width {
			p.brokenLogic(stmt.Tokens)
		} else {
			p.words(stmt.Tokens)
		}
		p.separator(false)
	}
	return p.String()
}

// IsFormatted reports whether src is already in canonical layout.
func IsFormatted(src string, opts Options) bool {
	return Format(src, opts) == src
}

func lineWidth(tokens []token.Token) int {
	n := 0
	for i, tok := range tokens {
		if i > 0 {
			n++
		}
		n += len(tok.Literal)
	}
	return n
}

// brokenLogic prints a long logic statement with each bracketed group
// opening an indented block.
func (p *Printer) brokenLogic(tokens []token.Token) {
	for i, tok := range tokens {
		switch tok.Literal {
		case token.LBracket:
			if !p.atLineStart {
				p.space()
			}
			p.write(tok.Literal)
			p.indent()
			p.writeln()
		case token.RBracket:
			p.dedent()
			if !p.atLineStart {
				p.writeln()
			}
			p.write(tok.Literal)
		default:
			if i > 0 && !p.atLineStart {
				p.space()
			}
			p.write(tok.Literal)
		}
	}
}
