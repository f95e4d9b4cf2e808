package cmds

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/monetaio/moneta/api"
)

// NewVersionCommand prints version information about the client.
func NewVersionCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version:    %s\n", api.Version)
			fmt.Printf("Git commit: %s\n", api.GitCommit)
			fmt.Printf("Built:      %s\n", api.BuildTime)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
