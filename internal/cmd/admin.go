package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/platform"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform administration",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		_, err := requireRoles(cmd.Context(), platform.RoleAdmin)
		return err
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate platform counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.AdminStats(cmd.Context())
		if err != nil {
			return err
		}

		return printResult(stats, func() {
			fmt.Printf("Users:            %d\n", stats.TotalUsers)
			fmt.Printf("Universities:     %d\n", stats.TotalUniversities)
			fmt.Printf("Events:           %d\n", stats.TotalEvents)
			fmt.Printf("Active events:    %d\n", stats.ActiveEvents)
			fmt.Printf("Bookings:         %d\n", stats.TotalBookings)
			fmt.Printf("Pending bookings: %d\n", stats.PendingBookings)
		})
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		role, _ := cmd.Flags().GetString("role")

		result, err := client.ListUsers(cmd.Context(), page, pageSize, platform.Role(role))
		if err != nil {
			return err
		}

		return printResult(result, func() {
			fmt.Printf("%-5s %-24s %-32s %-11s %s\n", "ID", "NAME", "EMAIL", "ROLE", "ACTIVE")
			for _, u := range result.Data {
				active := "yes"
				if u.IsActive != nil && !*u.IsActive {
					active = "no"
				}
				fmt.Printf("%-5d %-24s %-32s %-11s %s\n",
					u.ID, truncate(u.Name, 24), truncate(u.Email, 32), u.Role, active)
			}
			printPageFooter(result.Meta)
		})
	},
}

var adminUsersBanCmd = &cobra.Command{
	Use:   "ban <id>",
	Short: "Deactivate a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  banUserRun("ban"),
}

var adminUsersUnbanCmd = &cobra.Command{
	Use:   "unban <id>",
	Short: "Reactivate a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  banUserRun("unban"),
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %s", args[0])
		}

		if err := client.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted user #%d\n", id)
		return nil
	},
}

var adminUniversitiesCmd = &cobra.Command{
	Use:     "universities",
	Aliases: []string{"unis"},
	Short:   "Manage organizer organizations",
}

var adminUniversitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizer organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := client.ListUniversities(cmd.Context(), page, pageSize)
		if err != nil {
			return err
		}

		return printResult(result, func() {
			fmt.Printf("%-5s %-32s %s\n", "ID", "NAME", "CONTACT")
			for _, u := range result.Data {
				contact := ""
				if u.Contact != nil {
					contact = *u.Contact
				}
				fmt.Printf("%-5d %-32s %s\n", u.ID, truncate(u.Name, 32), contact)
			}
			printPageFooter(result.Meta)
		})
	},
}

var adminUniversitiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organizer organization and its account",
	Long: `Create an organizer organization together with its login account.

Examples:
  eventplanner admin universities create --name "Jane Org" --email org@example.com \
    --password secret123 --university-name "Example University"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := platform.CreateUniversityRequest{
			Name:           mustString(cmd, "name"),
			Email:          mustString(cmd, "email"),
			Password:       mustString(cmd, "password"),
			Phone:          mustString(cmd, "phone"),
			UniversityName: mustString(cmd, "university-name"),
			Address:        mustString(cmd, "address"),
			Contact:        mustString(cmd, "contact"),
			Description:    mustString(cmd, "description"),
			LogoURL:        mustString(cmd, "logo-url"),
		}

		uni, err := client.CreateUniversity(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Created university #%d: %s\n", uni.ID, uni.Name)
		return nil
	},
}

var adminUniversitiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an organizer organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid university id: %s", args[0])
		}

		if err := client.DeleteUniversity(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted university #%d\n", id)
		return nil
	},
}

var adminEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Moderate event listings across all organizers",
}

var adminEventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events across all organizers",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		status, _ := cmd.Flags().GetString("status")

		result, err := client.AdminListEvents(cmd.Context(), page, pageSize, platform.EventStatus(status))
		if err != nil {
			return err
		}

		return printResult(result, func() {
			printEventRows(result.Data)
			printPageFooter(result.Meta)
		})
	},
}

var adminEventsStatusCmd = &cobra.Command{
	Use:   "status <id> <draft|published|cancelled|completed>",
	Short: "Override an event's lifecycle state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		event, err := client.AdminSetEventStatus(cmd.Context(), id, platform.EventStatus(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Event #%d is now %s\n", event.ID, event.Status)
		return nil
	},
}

var adminEventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete any event listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if err := client.AdminDeleteEvent(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted event #%d\n", id)
		return nil
	},
}

func banUserRun(action string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %s", args[0])
		}

		user, err := client.BanUser(cmd.Context(), id, action)
		if err != nil {
			return err
		}

		state := "active"
		if user.IsActive != nil && !*user.IsActive {
			state = "deactivated"
		}
		fmt.Printf("User #%d (%s) is now %s\n", user.ID, user.Email, state)
		return nil
	}
}

func init() {
	adminUsersListCmd.Flags().Int("page", 1, "page number")
	adminUsersListCmd.Flags().Int("page-size", 20, "results per page")
	adminUsersListCmd.Flags().String("role", "", "filter by role (user, university, admin)")

	adminUniversitiesListCmd.Flags().Int("page", 1, "page number")
	adminUniversitiesListCmd.Flags().Int("page-size", 20, "results per page")

	adminUniversitiesCreateCmd.Flags().String("name", "", "account holder name")
	adminUniversitiesCreateCmd.Flags().String("email", "", "account email")
	adminUniversitiesCreateCmd.Flags().String("password", "", "account password (min 8 characters)")
	adminUniversitiesCreateCmd.Flags().String("phone", "", "phone number")
	adminUniversitiesCreateCmd.Flags().String("university-name", "", "organization name")
	adminUniversitiesCreateCmd.Flags().String("address", "", "street address")
	adminUniversitiesCreateCmd.Flags().String("contact", "", "contact line")
	adminUniversitiesCreateCmd.Flags().String("description", "", "description")
	adminUniversitiesCreateCmd.Flags().String("logo-url", "", "logo image URL")

	adminEventsListCmd.Flags().Int("page", 1, "page number")
	adminEventsListCmd.Flags().Int("page-size", 20, "results per page")
	adminEventsListCmd.Flags().String("status", "", "filter by status")

	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersBanCmd)
	adminUsersCmd.AddCommand(adminUsersUnbanCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)

	adminUniversitiesCmd.AddCommand(adminUniversitiesListCmd)
	adminUniversitiesCmd.AddCommand(adminUniversitiesCreateCmd)
	adminUniversitiesCmd.AddCommand(adminUniversitiesDeleteCmd)

	adminEventsCmd.AddCommand(adminEventsListCmd)
	adminEventsCmd.AddCommand(adminEventsStatusCmd)
	adminEventsCmd.AddCommand(adminEventsDeleteCmd)

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminUniversitiesCmd)
	adminCmd.AddCommand(adminEventsCmd)

	rootCmd.AddCommand(adminCmd)
}
