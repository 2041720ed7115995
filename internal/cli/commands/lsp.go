package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server over stdio",
		Long: `Start a Language Server Protocol server on stdin/stdout for editor
integration. It publishes lint diagnostics as scripts change and answers
completion, hover, go-to-definition and formatting requests.

Lint rules follow the lint section of leaplogic.yaml. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			rules, err := cc.Cfg.Lint.Rules()
			if err != nil {
				return err
			}

			server := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Options{
				Logger:  cc.Logger.With("component", "lsp"),
				Rules:   rules,
				Version: version,
			})
			return server.Run()
		},
	}
}
