package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_OpenUpdateClose(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///test/circuit.ll"

	store.Open(uri, "a 1 ;", 1)
	doc := store.Get(uri)
	require.NotNil(t, doc)
	assert.Equal(t, "a 1 ;", doc.Content)
	assert.Equal(t, 1, doc.Version)

	store.Update(uri, "a 0 ;", 2)
	updated := store.Get(uri)
	assert.Equal(t, "a 0 ;", updated.Content)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "a 1 ;", doc.Content, "earlier snapshot is unchanged")

	store.Update("file:///other.ll", "x", 1)
	assert.Equal(t, 1, store.Len())

	store.Close(uri)
	assert.Nil(t, store.Get(uri))
}

func TestDocument_Positions(t *testing.T) {
	doc := newDocument("u", "a 1 ;\nb 0 ;\n", 1)

	tests := []struct {
		offset int
		pos    Position
	}{
		{0, Position{Line: 0, Character: 0}},
		{4, Position{Line: 0, Character: 4}},
		{6, Position{Line: 1, Character: 0}},
		{8, Position{Line: 1, Character: 2}},
		{12, Position{Line: 2, Character: 0}},
		{99, Position{Line: 2, Character: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pos, doc.OffsetToPosition(tt.offset), "offset %d", tt.offset)
	}

	assert.Equal(t, 8, doc.PositionToOffset(Position{Line: 1, Character: 2}))
	assert.Equal(t, 12, doc.PositionToOffset(Position{Line: 9}))
	assert.Equal(t, Range{End: Position{Line: 2}}, doc.FullRange())
}

func TestDocument_TokenAt(t *testing.T) {
	doc := newDocument("u", "x and a [ or b c ] ;", 1)

	tok, ok := doc.TokenAt(Position{Character: 3})
	require.True(t, ok)
	assert.Equal(t, "and", tok.Literal)

	tok, ok = doc.TokenAt(Position{Character: 7})
	require.True(t, ok)
	assert.Equal(t, "a", tok.Literal)
	assert.Equal(t, Range{Start: Position{Character: 6}, End: Position{Character: 7}}, doc.TokenRange(tok))

	_, ok = newDocument("u", "   ", 1).TokenAt(Position{Character: 1})
	assert.False(t, ok)
}

func TestURIConversion(t *testing.T) {
	assert.Equal(t, "/tmp/my project/a.ll", URIToPath("file:///tmp/my%20project/a.ll"))
	assert.Equal(t, "relative.ll", URIToPath("relative.ll"))
	assert.Equal(t, "file:///tmp/my%20project/a.ll", PathToURI("/tmp/my project/a.ll"))
	assert.Equal(t, "file:///x.ll", PathToURI("file:///x.ll"))
}
