package lsp

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

// keywordDocs documents every keyword for completion and hover.
var keywordDocs = map[string]struct {
	Detail string
	Doc    string
}{
	"input": {"input name... ;", "Read a value for each name from the input source. `1` is true, anything else is false."},
	"print": {"print name... ;", "Print `name = 0|1` for each variable or truth table."},
	"and":   {"target and x... ;", "True when every operand is true."},
	"or":    {"target or x... ;", "True when any operand is true."},
	"not":   {"target not x ;", "Negates the first operand."},
	"set":   {"table set input... ;", "Create or replace a truth table over existing variables."},
	"min":   {"table min minterm... ;", "Add minterms (rows that evaluate to 1) to a truth table."},
}

// completionSlot is the grammatical slot under the cursor.
type completionSlot int

const (
	slotStatementStart completionSlot = iota // first token: input, print or a target
	slotStatementVerb                        // second token: operator, set, min or a source
	slotOperand                              // anything later
	slotOperator                             // first word inside a bracket
)

// detectSlot classifies the cursor position from the text before it.
func detectSlot(before string) (completionSlot, []string) {
	if i := strings.LastIndex(before, token.Separator); i >= 0 {
		before = before[i+1:]
	}
	words := strings.Fields(before)
	if len(before) > 0 && !isSpaceByte(before[len(before)-1]) && len(words) > 0 {
		words = words[:len(words)-1] // the word being typed
	}

	switch {
	case len(words) == 0:
		return slotStatementStart, words
	case len(words) == 1 && words[0] != "input" && words[0] != "print":
		return slotStatementVerb, words
	case words[len(words)-1] == token.LBracket:
		return slotOperator, words
	default:
		return slotOperand, words
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// extractPrefix returns the partial word before the cursor.
func extractPrefix(before string) string {
	i := len(before)
	for i > 0 && !isSpaceByte(before[i-1]) {
		i--
	}
	return before[i:]
}

// getCompletions returns completion items for a position.
func (s *Server) getCompletions(params CompletionParams) []CompletionItem {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	offset := doc.PositionToOffset(params.Position)
	before := doc.Content[:offset]
	prefix := extractPrefix(before)
	slot, words := detectSlot(before)
	// Only names defined before the current statement can be read by it.
	stmtStart := strings.LastIndex(before, token.Separator) + 1
	symbols := collectSymbols(lint.NewContext(before[:stmtStart]))

	var items []CompletionItem
	addKeyword := func(kw string, kind CompletionItemKind) {
		d := keywordDocs[kw]
		items = append(items, CompletionItem{Label: kw, Kind: kind, Detail: d.Detail, Documentation: d.Doc, SortText: "0" + kw})
	}
	addSymbols := func(tablesOnly, varsOnly bool) {
		for _, sym := range symbols {
			isTable := sym.Detail() == "truth table"
			if (tablesOnly && !isTable) || (varsOnly && isTable) {
				continue
			}
			kind := CompletionItemKindVariable
			if isTable {
				kind = CompletionItemKindStruct
			}
			items = append(items, CompletionItem{Label: sym.Name, Kind: kind, Detail: sym.Detail(), Documentation: sym.Statement, SortText: "1" + sym.Name})
		}
	}

	switch slot {
	case slotStatementStart:
		addKeyword("input", CompletionItemKindFunction)
		addKeyword("print", CompletionItemKindFunction)
		addSymbols(false, false)
	case slotStatementVerb:
		for _, kw := range []string{"and", "or", "not"} {
			addKeyword(kw, CompletionItemKindOperator)
		}
		addKeyword("set", CompletionItemKindKeyword)
		addKeyword("min", CompletionItemKindKeyword)
		items = append(items,
			CompletionItem{Label: "0", Kind: CompletionItemKindValue, Detail: "false", SortText: "00"},
			CompletionItem{Label: "1", Kind: CompletionItemKindValue, Detail: "true", SortText: "01"},
		)
		addSymbols(false, false)
	case slotOperator:
		for _, kw := range []string{"and", "or", "not"} {
			addKeyword(kw, CompletionItemKindOperator)
		}
	default:
		switch {
		case words[0] == "print":
			addSymbols(false, false)
		case words[0] == "input":
		case len(words) >= 2 && words[1] == "min":
		case len(words) >= 2 && words[1] == "set":
			addSymbols(false, true)
		default:
			items = append(items, CompletionItem{Label: token.LBracket, Kind: CompletionItemKindOperator, Detail: "sub-expression", SortText: "2["})
			addSymbols(false, true)
		}
	}

	return filterByPrefix(items, prefix)
}

func filterByPrefix(items []CompletionItem, prefix string) []CompletionItem {
	out := items[:0]
	for _, item := range items {
		if strings.HasPrefix(item.Label, prefix) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortText < out[j].SortText })
	return out
}
