package token

// Tokenize splits src into tokens at spaces, tabs, carriage returns and
// newlines. Each token records where it starts in src.
func Tokenize(src string) []Token {
	var tokens []Token

	line, col := 1, 1
	start := -1
	var startPos Position

	flush := func(end int) {
		if start < 0 {
			return
		}
		lit := src[start:end]
		tokens = append(tokens, Token{Type: Lookup(lit), Literal: lit, Pos: startPos})
		start = -1
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		if isSpace(c) {
			flush(i)
			if c == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			continue
		}
		if start < 0 {
			start = i
			startPos = Position{Line: line, Column: col, Offset: i}
		}
		col++
	}
	flush(len(src))

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
