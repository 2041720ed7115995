package engine

import "context"

// Severity tags console events.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Event is a message for the console.
type Event struct {
	Severity Severity `json:"severity"`
	Line     int      `json:"line"`
	Kind     string   `json:"kind,omitempty"`
	Message  string   `json:"message"`

	// Name and Value are set for print output.
	Name  string `json:"name,omitempty"`
	Value *bool  `json:"value,omitempty"`
}

// Sink receives console events in order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// InputReader supplies one raw line of console input for a variable.
type InputReader interface {
	ReadInput(ctx context.Context, name string) (string, error)
}

// InputFunc adapts a function to an InputReader.
type InputFunc func(ctx context.Context, name string) (string, error)

// ReadInput calls f(ctx, name).
func (f InputFunc) ReadInput(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

type discardSink struct{}

func (discardSink) Emit(Event) {}
