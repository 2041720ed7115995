// Package config loads LeapLogic CLI configuration from defaults, the
// project config file, LEAPLOGIC_* environment variables and flags.
package config

import (
	"time"

	"github.com/leapstack-labs/leaplogic/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
	HistoryPath  string        `koanf:"history_path"`
	NoHistory    bool          `koanf:"no_history"`
	MaxDepth     int           `koanf:"max_depth"`
	InputTimeout time.Duration `koanf:"input_timeout"`
	Timing       bool          `koanf:"timing"`
	Lint         LintConfig    `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when there is none.
	ProjectRoot string `koanf:"-"`
}

// LintConfig selects lint rules for check and the language server.
type LintConfig struct {
	// Disabled lists rule IDs to skip
	Disabled []string `koanf:"disabled"`
	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`
}

// Rules converts the section into analyzer configuration.
func (l LintConfig) Rules() (*lint.Config, error) {
	return lint.ConfigFrom(l.Disabled, l.Severity)
}

// Default configuration values.
const (
	DefaultHistoryFile = ".leaplogic/history.db"
	DefaultOutput      = "auto" // TTY=text, non-TTY=markdown
	DefaultMaxDepth    = 256
	DefaultTiming      = true

	// EnvPrefix prefixes environment overrides: LEAPLOGIC_MAX_DEPTH -> max_depth.
	EnvPrefix = "LEAPLOGIC_"
)

// ConfigFileNames are the accepted config file names, in lookup order.
var ConfigFileNames = []string{"leaplogic.yaml", "leaplogic.yml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		HistoryPath:  DefaultHistoryFile,
		MaxDepth:     DefaultMaxDepth,
		Timing:       DefaultTiming,
	}
}

// HistoryEnabled reports whether runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return !c.NoHistory && c.HistoryPath != ""
}
