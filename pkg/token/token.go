// Package token defines the token types of the LeapLogic script language.
//
// Scripts are whitespace-delimited: every token is a maximal run of
// non-whitespace characters, and brackets and separators are only
// recognised when they stand alone.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT   // identifier
	LITERAL // 0 or 1
	NUMBER  // any other run of digits

	// Punctuation
	SEPARATOR // ;
	LBRACKET  // [
	RBRACKET  // ]

	// Logic keywords
	AND
	OR
	NOT
	SET
	MIN

	// Function keywords
	PRINT
	INPUT
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	LITERAL:   "LITERAL",
	NUMBER:    "NUMBER",
	SEPARATOR: ";",
	LBRACKET:  "[",
	RBRACKET:  "]",
	AND:       "and",
	OR:        "or",
	NOT:       "not",
	SET:       "set",
	MIN:       "min",
	PRINT:     "print",
	INPUT:     "input",
}

// Separator, LBracket and RBracket are the literal spellings of the
// punctuation tokens.
const (
	Separator = ";"
	LBracket  = "["
	RBracket  = "]"
)

// logicKeywords are the keywords that may appear in second position of a
// statement.
var logicKeywords = map[string]TokenType{
	"and": AND,
	"or":  OR,
	"not": NOT,
	"min": MIN,
	"set": SET,
}

// functionKeywords are the built-in statements.
var functionKeywords = map[string]TokenType{
	"print": PRINT,
	"input": INPUT,
}

// Lookup returns the token type for a raw token string.
func Lookup(s string) TokenType {
	switch s {
	case "":
		return ILLEGAL
	case Separator:
		return SEPARATOR
	case LBracket:
		return LBRACKET
	case RBracket:
		return RBRACKET
	case "0", "1":
		return LITERAL
	}
	if tok, ok := logicKeywords[s]; ok {
		return tok
	}
	if tok, ok := functionKeywords[s]; ok {
		return tok
	}
	if IsNumber(s) {
		return NUMBER
	}
	if IsIdentifier(s) {
		return IDENT
	}
	return ILLEGAL
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, logic := logicKeywords[s]
	_, fn := functionKeywords[s]
	return logic || fn
}

// IsOperator reports whether s is one of the expression operators and, or, not.
func IsOperator(s string) bool {
	return s == "and" || s == "or" || s == "not"
}

// IsNumber reports whether s is a non-empty run of ASCII digits.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s is lexically an identifier: a letter or
// underscore followed by letters, digits or underscores. Keywords pass this
// check; use IsValidName to exclude them.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if !isLetter(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

// IsValidName reports whether s can name a variable.
func IsValidName(s string) bool {
	return IsIdentifier(s) && !IsKeyword(s)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns the token literal.
func (t Token) String() string {
	return t.Literal
}

// Texts returns the literals of tokens in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Literal
	}
	return out
}
