package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/platform"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Book events and manage bookings",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your own bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireRoles(cmd.Context()); err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := client.MyBookings(cmd.Context(), page, pageSize)
		if err != nil {
			return err
		}

		return printResult(result, func() {
			printBookingRows(result.Data)
			printPageFooter(result.Meta)
		})
	},
}

var bookingsCreateCmd = &cobra.Command{
	Use:   "create <event-id>",
	Short: "Book seats at an event",
	Long: `Book seats at a published event.

Examples:
  eventplanner bookings create 12 --seats 2
  eventplanner bookings create 12 --seats 1 --notes "wheelchair access"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUser); err != nil {
			return err
		}

		seats, _ := cmd.Flags().GetInt("seats")
		notes, _ := cmd.Flags().GetString("notes")

		booking, err := client.CreateBooking(cmd.Context(), eventID, platform.CreateBookingRequest{
			Seats: seats,
			Notes: notes,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Booking #%d created (%s, %d seats)\n", booking.ID, booking.Status, booking.Seats)
		return nil
	},
}

var bookingsEventCmd = &cobra.Command{
	Use:   "event <event-id>",
	Short: "List bookings for one of your events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := client.EventBookings(cmd.Context(), eventID, page, pageSize)
		if err != nil {
			return err
		}

		return printResult(result, func() {
			printBookingRows(result.Data)
			printPageFooter(result.Meta)
		})
	},
}

var bookingsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending booking",
	Args:  cobra.ExactArgs(1),
	RunE:  setBookingStatusRun(platform.BookingApproved),
}

var bookingsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending booking",
	Args:  cobra.ExactArgs(1),
	RunE:  setBookingStatusRun(platform.BookingRejected),
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel one of your bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid booking id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context()); err != nil {
			return err
		}

		booking, err := client.SetBookingStatus(cmd.Context(), id, platform.BookingCancelled)
		if err != nil {
			return err
		}

		fmt.Printf("Booking #%d cancelled\n", booking.ID)
		return nil
	},
}

var bookingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a booking record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid booking id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context()); err != nil {
			return err
		}

		if err := client.DeleteBooking(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted booking #%d\n", id)
		return nil
	},
}

// setBookingStatusRun builds the shared approve/reject handler; both are
// organizer decisions on someone else's booking.
func setBookingStatusRun(status platform.BookingStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid booking id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		booking, err := client.SetBookingStatus(cmd.Context(), id, status)
		if err != nil {
			return err
		}

		fmt.Printf("Booking #%d is now %s\n", booking.ID, booking.Status)
		return nil
	}
}

func printBookingRows(bookings []platform.Booking) {
	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return
	}

	fmt.Printf("%-5s %-32s %-11s %-6s %s\n", "ID", "EVENT", "DATE", "SEATS", "STATUS")
	for _, b := range bookings {
		title := fmt.Sprintf("#%d", b.EventID)
		date := ""
		if b.Event != nil {
			title = truncate(b.Event.Title, 32)
			date = b.Event.Date
		}
		fmt.Printf("%-5d %-32s %-11s %-6d %s\n", b.ID, title, date, b.Seats, b.Status)
	}
}

func init() {
	bookingsListCmd.Flags().Int("page", 1, "page number")
	bookingsListCmd.Flags().Int("page-size", 20, "results per page")

	bookingsCreateCmd.Flags().Int("seats", 1, "number of seats")
	bookingsCreateCmd.Flags().String("notes", "", "note for the organizer")

	bookingsEventCmd.Flags().Int("page", 1, "page number")
	bookingsEventCmd.Flags().Int("page-size", 20, "results per page")

	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsCreateCmd)
	bookingsCmd.AddCommand(bookingsEventCmd)
	bookingsCmd.AddCommand(bookingsApproveCmd)
	bookingsCmd.AddCommand(bookingsRejectCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)
	bookingsCmd.AddCommand(bookingsDeleteCmd)

	rootCmd.AddCommand(bookingsCmd)
}
