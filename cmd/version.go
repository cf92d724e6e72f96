package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
)

func newVersionCommand(versionInfo common.VersionInfo) *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the webapp version, commit hash, and build date.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, versionInfo.Short())
				return
			}
			bold := color.New(color.Bold)
			bold.Fprintf(w, "webapp %s\n", versionInfo.Short())
			fmt.Fprintf(w, "Commit: %s\n", versionInfo.Commit)
			fmt.Fprintf(w, "Built: %s\n", versionInfo.Date)
			if !versionInfo.IsRelease() {
				color.New(color.FgYellow).Fprintln(w, "Development build")
			}
		},
	}

	versionCmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return versionCmd
}
