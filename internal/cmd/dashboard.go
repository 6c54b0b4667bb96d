package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard for your role.

The dashboard restores the persisted session in the background and shows a
waiting indicator until it settles; attendees see upcoming events and their
bookings, organizers their own listings, administrators the whole platform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), sessions, client)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
