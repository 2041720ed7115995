package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
)

// setupProject moves into an empty project directory with default config.
func setupProject(t *testing.T, configArgs ...string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(dir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(configArgs))
	_, err = config.LoadConfig("", fs)
	require.NoError(t, err)
	return dir
}

func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(src), 0o600))
	return name
}

type result struct {
	Out    string
	ErrOut string
	Err    error
}

// execute runs cmd with args and stdin, capturing both streams.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return result{Out: out.String(), ErrOut: errOut.String(), Err: err}
}
