package lint

import "sort"

// Analyzer runs registered lint rules against scripts.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeSource runs every enabled rule against src. Diagnostics are
// ordered by position, then by rule ID.
func (a *Analyzer) AnalyzeSource(src string) []Diagnostic {
	return a.Analyze(NewContext(src))
}

// Analyze runs every enabled rule against a prepared context.
func (a *Analyzer) Analyze(ctx *Context) []Diagnostic {
	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(ctx)
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Severity = a.config.GetSeverity(rule.ID, rule.Severity)
		}
		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		pi, pj := diagnostics[i].Pos, diagnostics[j].Pos
		if pi.Offset != pj.Offset {
			return pi.Offset < pj.Offset
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})
	return diagnostics
}

// CountSeverity returns the number of diagnostics at the given severity.
func CountSeverity(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
