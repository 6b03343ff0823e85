package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var build = "unknown"

// SetBuild records the build identifier injected at link time.
func SetBuild(b string) {
	if b != "" {
		build = b
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build identifier",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nethys %s (%s)\n", version, build)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
