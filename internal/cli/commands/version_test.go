package commands

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{name: "default version", version: "0.1.0", wantOut: []string{"LeapLogic v0.1.0", "- **Go:** " + runtime.Version()}},
		{name: "custom version", version: "1.2.3", wantOut: []string{"LeapLogic v1.2.3", "- **Platform:** " + runtime.GOOS + "/" + runtime.GOARCH}},
		{name: "dev version", version: "dev", wantOut: []string{"LeapLogic vdev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)
			res := execute(t, NewVersionCommand(tt.version), "")
			require.NoError(t, res.Err)
			for _, want := range tt.wantOut {
				assert.Contains(t, res.Out, want)
			}
		})
	}
}

func TestNewVersionCommand_JSON(t *testing.T) {
	setupProject(t, "-o", "json")

	res := execute(t, NewVersionCommand("1.2.3"), "")
	require.NoError(t, res.Err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(res.Out), &info))
	assert.Equal(t, VersionInfo{Version: "1.2.3", Go: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH}, info)
}

func TestNewVersionCommand_RejectsArgs(t *testing.T) {
	setupProject(t)
	res := execute(t, NewVersionCommand("dev"), "", "extra")
	assert.Error(t, res.Err)
}
