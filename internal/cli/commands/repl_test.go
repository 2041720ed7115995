package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	clitest "github.com/leapstack-labs/leaplogic/internal/cli/testutil"
	"github.com/leapstack-labs/leaplogic/internal/testutil"
)

func newTestSession(t *testing.T, tr *clitest.TestRenderer, stdin string) *replSession {
	t.Helper()
	cc := &CommandContext{
		Cfg:      config.Default(),
		Logger:   testutil.NewTestLogger(t),
		Renderer: tr.Renderer,
	}
	return newReplSession(cc, output.NewReaderInput(strings.NewReader(stdin), nil))
}

func feed(t *testing.T, s *replSession, lines ...string) bool {
	t.Helper()
	for _, line := range lines {
		if s.handleLine(context.Background(), line) {
			return true
		}
	}
	return false
}

func TestReplSession_StatePersistsAcrossLines(t *testing.T) {
	tr := clitest.NewTestRendererMarkdown()
	s := newTestSession(t, tr, "")

	feed(t, s, "a 1 ;", "b 0 ;", "x or a b ;", "print x ;")
	assert.Equal(t, "x = 1\n", tr.Output())
}

func TestReplSession_MultiLineStatement(t *testing.T) {
	tr := clitest.NewTestRendererMarkdown()
	s := newTestSession(t, tr, "")

	feed(t, s, "a 1 ; x and a")
	assert.True(t, s.pending())
	assert.Empty(t, tr.Output())

	feed(t, s, "[ or a [ not a ] ]", "; print x ;")
	assert.False(t, s.pending())
	assert.Equal(t, "x = 1\n", tr.Output())
}

func TestReplSession_ErrorKeepsSession(t *testing.T) {
	tr := clitest.NewTestRendererMarkdown()
	s := newTestSession(t, tr, "")

	quit := feed(t, s, "a 1 ;", "print q ;", "print a ;")
	assert.False(t, quit)
	assert.Contains(t, tr.ErrorOutput(), `[line 2] Error: variable not found: "q"`)
	assert.Equal(t, "a = 1\n", tr.Output())
}

func TestReplSession_Input(t *testing.T) {
	tr := clitest.NewTestRendererMarkdown()
	s := newTestSession(t, tr, "1\n0\n")

	feed(t, s, "input a b ;", "print a b ;")
	assert.Equal(t, "a = 1\nb = 0\n", tr.Output())
}

func TestReplSession_DotCommands(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantQuit bool
		wantOut  []string
		wantErr  []string
	}{
		{
			name:    "vars",
			lines:   []string{"b 0 ;", "a 1 ;", ".vars"},
			wantOut: []string{"| Name | Value |", "| a | 1 |", "| b | 0 |"},
		},
		{
			name:    "tables",
			lines:   []string{"a 1 ; b 1 ;", "t set a b ;", "t min 3 1 ;", ".tables"},
			wantOut: []string{"| t | 2 | 1 3 | 1 |"},
		},
		{
			name:    "reset",
			lines:   []string{"a 1 ;", ".reset", ".vars"},
			wantOut: []string{"State cleared", "(0 rows)"},
		},
		{
			name:    "help",
			lines:   []string{".help"},
			wantOut: []string{".vars", ".tables", ".reset"},
		},
		{
			name:    "unknown",
			lines:   []string{".bogus"},
			wantErr: []string{"Unknown command: .bogus"},
		},
		{
			name:     "quit",
			lines:    []string{".quit"},
			wantQuit: true,
		},
		{
			name:     "exit",
			lines:    []string{".EXIT"},
			wantQuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := clitest.NewTestRendererMarkdown()
			s := newTestSession(t, tr, "")

			require.Equal(t, tt.wantQuit, feed(t, s, tt.lines...))
			for _, want := range tt.wantOut {
				assert.Contains(t, tr.Output(), want)
			}
			for _, want := range tt.wantErr {
				assert.Contains(t, tr.ErrorOutput(), want)
			}
		})
	}
}

func TestReplSession_TextModeTable(t *testing.T) {
	tr := clitest.NewTestRenderer(output.ModeText, false)
	s := newTestSession(t, tr, "")

	feed(t, s, "a 1 ;", ".vars")
	assert.Contains(t, tr.Output(), "┌")
	clitest.AssertNoANSI(t, tr.Output())
}
