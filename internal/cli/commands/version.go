package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
)

// VersionInfo is the JSON form of the version command.
type VersionInfo struct {
	Version string `json:"version"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the LeapLogic version and the Go toolchain and platform it was built for.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{
				Version: version,
				Go:      runtime.Version(),
				OS:      runtime.GOOS,
				Arch:    runtime.GOARCH,
			}
			r := NewCommandContext(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}
			r.Printf("LeapLogic v%s\n", info.Version)
			r.KeyValue("Go", info.Go)
			r.KeyValue("Platform", info.OS+"/"+info.Arch)
			return nil
		},
	}
}
