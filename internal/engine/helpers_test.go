package engine

import "github.com/leapstack-labs/leaplogic/pkg/token"

func tokenize(src string) []token.Token {
	return token.Tokenize(src)
}
