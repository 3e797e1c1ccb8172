package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set by the linker: -X github.com/akyairhashvil/tasktimer/internal/cli.GitCommit=...
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var appVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tasktimer %s\n", versionLabel())
	},
}

func versionLabel() string {
	label := appVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", appVersion, GitCommit, BuildTime)
	}
	return label
}
