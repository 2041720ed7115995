// Package lint checks LeapLogic scripts without running them.
//
// Every check the interpreter performs at run time (identifier validity,
// undefined names, illegal tokens, malformed brackets, out-of-range
// minterms) has a static counterpart here, plus hints the interpreter never
// reports, such as definitions that are never read.
//
// Rules live in the rules subpackage and register from init:
//
//	import _ "github.com/leapstack-labs/leaplogic/pkg/lint/rules"
//
//	cfg := lint.NewConfig().Disable("LL05")
//	diags := lint.NewAnalyzer(cfg).AnalyzeSource(src)
//
// Rule groups are structure, reference and literal.
package lint
