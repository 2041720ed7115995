package config

import (
	"errors"
	"fmt"
)

var validOutputs = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if !validOutputs[c.OutputFormat] {
		errs = append(errs, fmt.Errorf("output must be one of auto, text, markdown, json; got %q", c.OutputFormat))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative; got %d", c.MaxDepth))
	}
	if c.InputTimeout < 0 {
		errs = append(errs, fmt.Errorf("input_timeout must not be negative; got %s", c.InputTimeout))
	}
	if _, err := c.Lint.Rules(); err != nil {
		errs = append(errs, fmt.Errorf("lint: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
