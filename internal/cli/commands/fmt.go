package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/pkg/format"
)

// ErrNotFormatted is returned by fmt --check when a script would change.
var ErrNotFormatted = errors.New("script is not formatted")

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	Write bool
	Check bool
	Width int
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <script>...",
		Short: "Format LeapLogic scripts",
		Long: `Print scripts with one statement per line and single spaces between
tokens. Statement order and count never change, so diagnostics keep their
line numbers. Long logic statements are broken at brackets.`,
		Example: `  # Print the formatted script
  leaplogic fmt circuit.ll

  # Rewrite files in place
  leaplogic fmt -w *.ll

  # Fail if any file needs formatting (CI)
  leaplogic fmt --check *.ll`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Write the result back to the file")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Report files that are not formatted and fail")
	cmd.Flags().IntVar(&opts.Width, "width", format.DefaultWidth, "Line width before logic statements are broken (-1 never breaks)")

	return cmd
}

func runFmt(cmd *cobra.Command, scripts []string, opts *FmtOptions) error {
	r := NewCommandContext(cmd).Renderer
	fopts := format.Options{Width: opts.Width}

	var unformatted int
	for _, script := range scripts {
		src, err := os.ReadFile(script) //nolint:gosec // user-supplied script path
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		formatted := format.Format(string(src), fopts)
		changed := formatted != string(src)

		switch {
		case opts.Check:
			if changed {
				unformatted++
				r.StatusLine(script, "error", "needs formatting")
			}
		case opts.Write:
			if !changed {
				continue
			}
			if err := os.WriteFile(script, []byte(formatted), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", script, err)
			}
			r.StatusLine(script, "success", "formatted")
		default:
			_, _ = fmt.Fprint(r.Writer(), formatted)
		}
	}

	if unformatted > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrNotFormatted, unformatted)
	}
	return nil
}
