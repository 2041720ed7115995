// Package rules contains the built-in LeapLogic lint rules.
//
// Importing the package registers every rule:
//
//	import _ "github.com/leapstack-labs/leaplogic/pkg/lint/rules"
//
// Rules mirror the checks the interpreter performs at run time so a script
// can be validated without reading any input.
package rules
