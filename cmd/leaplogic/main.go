// Package main provides the CLI for the LeapLogic boolean scripting language.
package main

import (
	"os"

	"github.com/leapstack-labs/leaplogic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
