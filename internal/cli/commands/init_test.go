package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string)
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name:      "init empty directory",
			wantFiles: []string{"leaplogic.yaml", "example.ll", ".gitignore"},
		},
		{
			name:      "init into subdirectory",
			args:      []string{"circuits"},
			wantFiles: []string{"circuits/leaplogic.yaml", "circuits/example.ll"},
		},
		{
			name: "existing config without force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "leaplogic.yaml"), []byte("existing"), 0o600))
			},
			wantErr: true,
		},
		{
			name: "existing config with force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "leaplogic.yaml"), []byte("existing"), 0o600))
			},
			args:      []string{"--force"},
			wantFiles: []string{"leaplogic.yaml", "example.ll"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)
			if tt.setupDir != nil {
				tt.setupDir(t, dir)
			}

			res := execute(t, NewInitCommand(), "", tt.args...)
			if tt.wantErr {
				require.Error(t, res.Err)
				return
			}
			require.NoError(t, res.Err)
			assert.Contains(t, res.Out, "LeapLogic project initialized!")

			for _, f := range tt.wantFiles {
				_, err := os.Stat(filepath.Join(dir, f))
				assert.NoError(t, err, "expected %s to exist", f)
			}
		})
	}
}

func TestInit_ConfigLoadsAndExampleRuns(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, execute(t, NewInitCommand(), "").Err)

	config.ResetConfig()
	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "leaplogic.yaml"), config.GetConfigFileUsed())
	assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
	assert.True(t, cfg.Timing)
	assert.Equal(t, filepath.Join(dir, config.DefaultHistoryFile), cfg.HistoryPath)

	// a=1 b=0 c=1: x = a and (b or c) = 1, y = 0, majority(1,0,1) = 1
	res := execute(t, NewRunCommand(), "1\n", "example.ll")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "x = 1\ny = 0\nmaj = 1\n")
	assert.Empty(t, res.ErrOut)
}
