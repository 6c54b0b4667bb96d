package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/version"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
	// Version needs no config or backend.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()

		if versionVerbose {
			fmt.Println(info.String())
			return nil
		}

		return printResult(info, func() {
			fmt.Printf("eventplanner %s\n", info.Short())
		})
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "show detailed version information")

	rootCmd.AddCommand(versionCmd)
}
