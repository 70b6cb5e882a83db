package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// Needs neither configuration nor a session.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		build, ok := common.ReadBuildInfo()
		if !ok {
			fmt.Println("Failed to get version information")
			return
		}

		fmt.Printf("stayctl %s", build.Version)
		if commit := build.ShortCommit(); len(commit) > 0 {
			fmt.Printf(" (git: %s)", commit)
		}
		fmt.Println()
		fmt.Println(mutedStyle.Render(common.GetUserAgent()))
	},
}

func init() {

	rootCmd.AddCommand(versionCmd)
}
