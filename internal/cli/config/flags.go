package config

import "github.com/spf13/pflag"

// RegisterFlags adds the global configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Verbose output (debug logging)")
	fs.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	fs.String("history", "", "Path to run history database (default: "+DefaultHistoryFile+")")
	fs.Bool("no-history", false, "Do not record runs")
	fs.Int("max-depth", DefaultMaxDepth, "Maximum expression nesting depth")
	fs.Duration("input-timeout", 0, "Timeout for each input value (0 waits forever)")
	fs.Bool("timing", DefaultTiming, "Print run duration")
}

