package lsp

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

// undefinedRuleID is the lint rule whose findings get spelling suggestions.
const undefinedRuleID = "LL04"

// publishDiagnostics lints a document and sends the findings to the client.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Version,
		Diagnostics: s.diagnose(doc),
	})
}

// diagnose converts lint findings for doc into LSP diagnostics.
func (s *Server) diagnose(doc *Document) []Diagnostic {
	ctx := lint.NewContext(doc.Content)
	findings := s.analyzer.Analyze(ctx)

	var names []string
	for _, sym := range collectSymbols(ctx) {
		names = append(names, sym.Name)
	}

	diags := make([]Diagnostic, 0, len(findings))
	for _, f := range findings {
		msg := f.Message
		if f.RuleID == undefinedRuleID {
			if name := quotedName(msg); name != "" {
				if similar := suggestSimilar(name, names, 2); len(similar) > 0 {
					msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(similar, ", "))
				}
			}
		}

		diags = append(diags, Diagnostic{
			Range: Range{
				Start: doc.OffsetToPosition(f.Pos.Offset),
				End:   doc.OffsetToPosition(f.EndPos.Offset),
			},
			Severity: toDiagnosticSeverity(f.Severity),
			Code:     f.RuleID,
			Source:   "leaplogic",
			Message:  msg,
		})
	}
	return diags
}

func toDiagnosticSeverity(sev lint.Severity) DiagnosticSeverity {
	switch sev {
	case lint.SeverityError:
		return DiagnosticSeverityError
	case lint.SeverityWarning:
		return DiagnosticSeverityWarning
	case lint.SeverityInfo:
		return DiagnosticSeverityInformation
	default:
		return DiagnosticSeverityHint
	}
}

// quotedName extracts the name from messages shaped `...: "name"`.
func quotedName(msg string) string {
	start := strings.IndexByte(msg, '"')
	end := strings.LastIndexByte(msg, '"')
	if start < 0 || end <= start {
		return ""
	}
	return msg[start+1 : end]
}

// suggestSimilar returns candidates within maxDistance edits of input.
func suggestSimilar(input string, candidates []string, maxDistance int) []string {
	inputLower := strings.ToLower(input)
	var suggestions []string

	for _, candidate := range candidates {
		dist := levenshtein(inputLower, strings.ToLower(candidate))
		if dist <= maxDistance && dist > 0 {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

// levenshtein calculates the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}
