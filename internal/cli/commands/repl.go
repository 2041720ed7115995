package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
	"github.com/leapstack-labs/leaplogic/internal/engine"
	"github.com/leapstack-labs/leaplogic/pkg/token"
)

const (
	replPrompt     = "leaplogic> "
	replContPrompt = "       ...> "
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive LeapLogic session",
		Long: `Start an interactive session. Statements accumulate until a ';' token
and variables and truth tables persist between lines.

Commands:
  .help     Show help
  .vars     List variables
  .tables   List truth tables
  .reset    Drop all variables and truth tables
  .quit     Exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

// replSession holds the interpreter and the pending statement text.
type replSession struct {
	cc     *CommandContext
	interp *engine.Interpreter
	buf    strings.Builder
}

func newReplSession(cc *CommandContext, input engine.InputReader) *replSession {
	console := output.NewConsole(cc.Renderer, "")
	return &replSession{
		cc:     cc,
		interp: engine.New(nil, cc.EngineOptions(console, input)),
	}
}

// pending reports whether an incomplete statement is buffered.
func (s *replSession) pending() bool {
	return strings.TrimSpace(s.buf.String()) != ""
}

// handleLine processes one line of input. It returns true when the session
// should end.
func (s *replSession) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") && !s.pending() {
		return s.dotCommand(line)
	}

	s.buf.WriteString(line)
	s.buf.WriteString("\n")

	tokens := token.Tokenize(s.buf.String())
	if len(tokens) == 0 || tokens[len(tokens)-1].Literal != token.Separator {
		return false
	}
	s.buf.Reset()

	s.interp.Feed(tokens)
	for {
		more, err := s.interp.Step(ctx)
		if err != nil {
			// Already reported by the console; state is kept.
			var scriptErr *engine.Error
			if !errors.As(err, &scriptErr) {
				s.cc.Renderer.Error(err.Error())
			}
			return false
		}
		if !more {
			return false
		}
	}
}

func (s *replSession) dotCommand(line string) bool {
	r := s.cc.Renderer
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(r.Writer())
	case ".vars":
		vars := s.interp.Variables()
		if r.EffectiveMode() == output.ModeJSON {
			_ = r.JSON(vars)
			break
		}
		rows := make([]table.Row, 0, len(vars))
		for _, v := range vars {
			rows = append(rows, table.Row{v.Name, bitString(v.Value)})
		}
		renderTable(r, table.Row{"Name", "Value"}, rows)
	case ".tables":
		tables := s.interp.Tables()
		if r.EffectiveMode() == output.ModeJSON {
			_ = r.JSON(tables)
			break
		}
		rows := make([]table.Row, 0, len(tables))
		for _, t := range tables {
			rows = append(rows, table.Row{t.Name, t.Inputs, formatMinterms(t.Minterms), bitString(t.Value)})
		}
		renderTable(r, table.Row{"Name", "Inputs", "Minterms", "Value"}, rows)
	case ".reset":
		s.interp.Reset()
		r.Success("State cleared")
	default:
		r.Warning(fmt.Sprintf("Unknown command: %s (type .help for commands)", command))
	}
	return false
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	var historyFile string
	if cc.Cfg.HistoryEnabled() && cc.Cfg.HistoryPath != ":memory:" {
		historyFile = filepath.Join(filepath.Dir(cc.Cfg.HistoryPath), "repl_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newReplCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newReplSession(cc, output.NewReadlineInput(rl))

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "LeapLogic REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			session.buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if session.handleLine(ctx, line) {
			break
		}
		if session.pending() {
			rl.SetPrompt(replContPrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
	return nil
}

func printREPLHelp(w io.Writer) {
	help := `
Statements:
  a 1 ;                 assign a literal, alias a variable or snapshot a table
  x and a b ;           logic: and / or / not with [ ] grouping
  t set a b ;           truth table over inputs
  t min 1 2 ;           add minterms
  input a b ;           read values (1 is true, anything else false)
  print a t ;           print values

Commands:
  .help     Show this help message
  .vars     List variables
  .tables   List truth tables
  .reset    Drop all variables and truth tables
  .quit     Exit the REPL (also .exit)

Statements end with a ';' token and may span lines.
`
	_, _ = fmt.Fprintln(w, help)
}

// newReplCompleter completes dot-commands and keywords.
func newReplCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".vars"),
		readline.PcItem(".tables"),
		readline.PcItem(".reset"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem("input"),
		readline.PcItem("print"),
	}
	return readline.NewPrefixCompleter(items...)
}

func bitString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func formatMinterms(ms []uint64) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = fmt.Sprintf("%d", m)
	}
	return strings.Join(parts, " ")
}
