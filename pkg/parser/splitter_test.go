package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/pkg/token"
)

func TestSplitter(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  [][]string
		lines []int
	}{
		{
			name:  "empty stream",
			src:   "",
			want:  nil,
			lines: nil,
		},
		{
			name:  "trailing separator yields no empty statement",
			src:   "a 1 ; b a ;",
			want:  [][]string{{"a", "1"}, {"b", "a"}},
			lines: []int{1, 2},
		},
		{
			name:  "final statement without separator",
			src:   "a 1 ; print a",
			want:  [][]string{{"a", "1"}, {"print", "a"}},
			lines: []int{1, 2},
		},
		{
			name:  "consecutive separators yield empty statements",
			src:   "a 1 ; ; print a ;",
			want:  [][]string{{"a", "1"}, {}, {"print", "a"}},
			lines: []int{1, 2, 3},
		},
		{
			name:  "newlines do not split statements",
			src:   "x and\n  a\n  b ;",
			want:  [][]string{{"x", "and", "a", "b"}},
			lines: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := Split(token.Tokenize(tt.src))
			require.Len(t, stmts, len(tt.want))
			for i, stmt := range stmts {
				if len(tt.want[i]) == 0 {
					assert.Empty(t, stmt.Tokens)
				} else {
					assert.Equal(t, tt.want[i], stmt.Texts())
				}
				assert.Equal(t, tt.lines[i], stmt.Line)
			}
		})
	}
}

func TestSplitter_Done(t *testing.T) {
	sp := NewSplitter(token.Tokenize("a 1 ; b 0"))
	assert.False(t, sp.Done())

	_, ok := sp.Next()
	require.True(t, ok)
	assert.Equal(t, 1, sp.Line())

	_, ok = sp.Next()
	require.True(t, ok)
	assert.True(t, sp.Done())

	_, ok = sp.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, sp.Line())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		src  string
		want Kind
	}{
		{"input a b", KindInput},
		{"input", KindInput},
		{"print a", KindPrint},
		{"print", KindPrint},
		{"a", KindUnused},
		{"", KindUnused},
		{"x and a b", KindLogic},
		{"x or a", KindLogic},
		{"x not a", KindLogic},
		{"f set a b", KindSetBuilder},
		{"f min 0 3", KindMinInsert},
		{"a 1", KindAssign},
		{"a b", KindAssign},
		{"a b c", KindAssign},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmt := Statement{Tokens: token.Tokenize(tt.src), Line: 1}
			assert.Equal(t, tt.want, Classify(stmt))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "logic", KindLogic.String())
	assert.Equal(t, "set", KindSetBuilder.String())
	assert.Equal(t, "unused", KindUnused.String())
}
