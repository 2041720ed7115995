package output

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leaplogic/internal/engine"
)

// Console is an engine.Sink that writes script events through a Renderer.
// Prints go to stdout; warnings and errors go to stderr prefixed with
// [script:line].
type Console struct {
	r      *Renderer
	script string
	title  cases.Caser

	mu     sync.Mutex
	counts map[engine.Severity]int
}

// NewConsole creates a console for the named script.
func NewConsole(r *Renderer, script string) *Console {
	return &Console{
		r:      r,
		script: script,
		title:  cases.Title(language.English),
		counts: make(map[engine.Severity]int),
	}
}

// consoleEvent is the JSON form of an event.
type consoleEvent struct {
	Script string `json:"script,omitempty"`
	engine.Event
}

// Emit implements engine.Sink.
func (c *Console) Emit(ev engine.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[ev.Severity]++

	if c.r.EffectiveMode() == ModeJSON {
		_ = c.r.JSON(consoleEvent{Script: c.script, Event: ev})
		return
	}

	if ev.Severity == engine.SeverityInfo {
		c.print(ev)
		return
	}

	label := c.title.String(string(ev.Severity)) + ":"
	styles := c.r.Styles()
	switch ev.Severity {
	case engine.SeverityError:
		label = styles.Error.Render(label)
	case engine.SeverityWarning:
		label = styles.Warning.Render(label)
	}
	_, _ = fmt.Fprintf(c.r.ErrWriter(), "%s%s %s\n", c.prefix(ev.Line), label, ev.Message)
}

func (c *Console) print(ev engine.Event) {
	if ev.Value == nil || c.r.EffectiveMode() != ModeText {
		c.r.Println(ev.Message)
		return
	}
	styles := c.r.Styles()
	c.r.Printf("%s = %s\n", styles.Bold.Render(ev.Name), styles.Value.Render(bit(*ev.Value)))
}

func (c *Console) prefix(line int) string {
	switch {
	case c.script != "" && line > 0:
		return fmt.Sprintf("[%s:%d] ", c.script, line)
	case line > 0:
		return fmt.Sprintf("[line %d] ", line)
	default:
		return ""
	}
}

// Count returns how many events of a severity were emitted.
func (c *Console) Count(sev engine.Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[sev]
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
