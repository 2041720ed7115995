// Package output renders command results and script events to the terminal.
package output

import "fmt"

// OutputMode selects how results are written.
type OutputMode string

// Mode is shorthand for OutputMode.
type Mode = OutputMode

const (
	// ModeAuto picks text on a terminal and markdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText is styled human output.
	ModeText OutputMode = "text"
	// ModeMarkdown is plain output suitable for pipes and agents.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON writes one JSON document per event or result.
	ModeJSON OutputMode = "json"
)

// ParseMode validates a mode name. The empty string means auto.
func ParseMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeText, ModeMarkdown, ModeJSON:
		return OutputMode(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be auto, text, markdown or json", s)
	}
}

// Modes lists every accepted mode name.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}
