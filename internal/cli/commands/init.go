package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Force bool
}

// projectConfig is the leaplogic.yaml written by init.
type projectConfig struct {
	Output       string `yaml:"output"`
	HistoryPath  string `yaml:"history_path"`
	NoHistory    bool   `yaml:"no_history"`
	MaxDepth     int    `yaml:"max_depth"`
	InputTimeout string `yaml:"input_timeout"`
	Timing       bool   `yaml:"timing"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new LeapLogic project",
		Long: `Initialize a LeapLogic project.

This creates:
  - leaplogic.yaml with the default settings
  - example.ll, a small script using every statement form
  - .gitignore excluding the .leaplogic/ history directory`,
		Example: `  # Initialize in current directory
  leaplogic init

  # Initialize in a new directory
  leaplogic init circuits

  # Overwrite existing files
  leaplogic init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts *InitOptions) error {
	r := NewCommandContext(cmd).Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	}

	if err := writeProjectConfig(configPath); err != nil {
		return err
	}
	r.StatusLine(config.ConfigFileNames[0], "success", "")

	files, err := copyTemplate("project", dir, opts.Force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	for _, f := range files {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("LeapLogic project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Run 'leaplogic check example.ll' to inspect the statements")
	r.Println("  2. Run 'leaplogic run example.ll' and enter a value for c")
	r.Println("  3. Run 'leaplogic history' to see recorded runs")

	return nil
}

func writeProjectConfig(path string) error {
	def := config.Default()
	data, err := yaml.Marshal(projectConfig{
		Output:       def.OutputFormat,
		HistoryPath:  def.HistoryPath,
		NoHistory:    def.NoHistory,
		MaxDepth:     def.MaxDepth,
		InputTimeout: time.Duration(0).String(),
		Timing:       def.Timing,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	header := []byte("# LeapLogic configuration\n# Every key can be overridden with LEAPLOGIC_<KEY> or the matching flag.\n")
	if err := os.WriteFile(path, append(header, data...), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
