package lsp

import (
	"fmt"

	"github.com/leapstack-labs/leaplogic/pkg/format"
	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

// getHover describes the keyword or name under the cursor.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	tok, ok := doc.TokenAt(params.Position)
	if !ok {
		return nil
	}
	rng := doc.TokenRange(tok)

	if d, ok := keywordDocs[tok.Literal]; ok {
		return &Hover{
			Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: fmt.Sprintf("```\n%s\n```\n%s", d.Detail, d.Doc)},
			Range:    &rng,
		}
	}

	sym, ok := findSymbol(collectSymbols(lint.NewContext(doc.Content)), tok.Literal)
	if !ok {
		return nil
	}
	return &Hover{
		Contents: MarkupContent{
			Kind:  MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s** (%s)\n\nDefined by statement %d:\n```\n%s\n```", sym.Name, sym.Detail(), sym.Line, sym.Statement),
		},
		Range: &rng,
	}
}

// getDefinition locates the first definition of the name under the cursor.
func (s *Server) getDefinition(params DefinitionParams) *Location {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	tok, ok := doc.TokenAt(params.Position)
	if !ok {
		return nil
	}
	sym, ok := findSymbol(collectSymbols(lint.NewContext(doc.Content)), tok.Literal)
	if !ok {
		return nil
	}
	return &Location{URI: doc.URI, Range: doc.TokenRange(sym.Def)}
}

// getFormatting returns a single whole-document edit, or none when the
// script is already formatted.
func (s *Server) getFormatting(params DocumentFormattingParams) []TextEdit {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	formatted := format.Source(doc.Content)
	if formatted == doc.Content {
		return []TextEdit{}
	}
	return []TextEdit{{Range: doc.FullRange(), NewText: formatted}}
}
