package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/platform"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage event listings",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Long: `List events, optionally filtered and paged.

Listing is public; a persisted session is attached when present so
organizers also see their own drafts.

Examples:
  eventplanner events list
  eventplanner events list --status published --page 2
  eventplanner events list --start-date 2026-09-01 --end-date 2026-09-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions.Initialize(cmd.Context())

		status, _ := cmd.Flags().GetString("status")
		filters := platform.EventFilters{
			Status:    platform.EventStatus(status),
			StartDate: mustString(cmd, "start-date"),
			EndDate:   mustString(cmd, "end-date"),
			OrderBy:   mustString(cmd, "order-by"),
			Direction: mustString(cmd, "direction"),
		}
		filters.OrganizerID, _ = cmd.Flags().GetInt("organizer")
		filters.UniversityID, _ = cmd.Flags().GetInt("university")
		filters.Page, _ = cmd.Flags().GetInt("page")
		filters.PageSize, _ = cmd.Flags().GetInt("page-size")

		page, err := client.ListEvents(cmd.Context(), filters)
		if err != nil {
			return err
		}

		return printResult(page, func() {
			printEventRows(page.Data)
			printPageFooter(page.Meta)
		})
	},
}

var eventsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		sessions.Initialize(cmd.Context())

		event, err := client.GetEvent(cmd.Context(), id)
		if err != nil {
			return err
		}

		return printResult(event, func() {
			fmt.Printf("Event #%d: %s [%s]\n", event.ID, event.Title, event.Status)
			fmt.Printf("When:     %s %s\n", event.Date, event.Time)
			fmt.Printf("Where:    %s\n", event.Location)
			fmt.Printf("Capacity: %d\n", event.Capacity)
			fmt.Printf("Price:    %s\n", event.Price)
			if event.Organizer != nil {
				fmt.Printf("Organizer: %s <%s>\n", event.Organizer.Name, event.Organizer.Email)
			}
			if event.University != nil {
				fmt.Printf("University: %s\n", event.University.Name)
			}
			fmt.Println()
			fmt.Println(event.Description)
		})
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event listing",
	Long: `Create an event listing. Organizer accounts only.

Examples:
  eventplanner events create --title "Open Day" --description "Campus tour" \
    --date 2026-10-01 --time 10:00 --location "Main hall" --capacity 200 --price 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		req := platform.CreateEventRequest{
			Title:       mustString(cmd, "title"),
			Description: mustString(cmd, "description"),
			Date:        mustString(cmd, "date"),
			Time:        mustString(cmd, "time"),
			Location:    mustString(cmd, "location"),
			Price:       mustString(cmd, "price"),
			ImageURL:    mustString(cmd, "image-url"),
		}
		req.Capacity, _ = cmd.Flags().GetInt("capacity")

		if req.Title == "" || req.Date == "" {
			capacity := strconv.Itoa(req.Capacity)
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Title").Value(&req.Title),
				huh.NewInput().Title("Description").Value(&req.Description),
				huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&req.Date),
				huh.NewInput().Title("Time (HH:MM)").Value(&req.Time),
				huh.NewInput().Title("Location").Value(&req.Location),
				huh.NewInput().Title("Capacity").Value(&capacity),
				huh.NewInput().Title("Price").Value(&req.Price),
			))
			if err := form.Run(); err != nil {
				return err
			}
			if n, err := strconv.Atoi(capacity); err == nil {
				req.Capacity = n
			}
		}

		event, err := client.CreateEvent(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Created event #%d (%s)\n", event.ID, event.Status)
		return nil
	},
}

var eventsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an event listing",
	Long: `Update fields of an event listing. Only the flags you pass are changed.

Examples:
  eventplanner events update 12 --capacity 300
  eventplanner events update 12 --location "Auditorium B" --time 14:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		var req platform.UpdateEventRequest
		if cmd.Flags().Changed("title") {
			req.Title = stringPtr(cmd, "title")
		}
		if cmd.Flags().Changed("description") {
			req.Description = stringPtr(cmd, "description")
		}
		if cmd.Flags().Changed("date") {
			req.Date = stringPtr(cmd, "date")
		}
		if cmd.Flags().Changed("time") {
			req.Time = stringPtr(cmd, "time")
		}
		if cmd.Flags().Changed("location") {
			req.Location = stringPtr(cmd, "location")
		}
		if cmd.Flags().Changed("capacity") {
			capacity, _ := cmd.Flags().GetInt("capacity")
			req.Capacity = &capacity
		}
		if cmd.Flags().Changed("price") {
			req.Price = stringPtr(cmd, "price")
		}
		if cmd.Flags().Changed("image-url") {
			req.ImageURL = stringPtr(cmd, "image-url")
		}

		event, err := client.UpdateEvent(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated event #%d\n", event.ID)
		return nil
	},
}

var eventsStatusCmd = &cobra.Command{
	Use:   "status <id> <draft|published|cancelled|completed>",
	Short: "Move an event through its lifecycle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		event, err := client.SetEventStatus(cmd.Context(), id, platform.EventStatus(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Event #%d is now %s\n", event.ID, event.Status)
		return nil
	},
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id: %s", args[0])
		}

		if _, err := requireRoles(cmd.Context(), platform.RoleUniversity, platform.RoleAdmin); err != nil {
			return err
		}

		if err := client.DeleteEvent(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted event #%d\n", id)
		return nil
	},
}

func printEventRows(events []platform.Event) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	fmt.Printf("%-5s %-32s %-11s %-11s %-6s %s\n", "ID", "TITLE", "DATE", "STATUS", "SEATS", "LOCATION")
	for _, e := range events {
		fmt.Printf("%-5d %-32s %-11s %-11s %-6d %s\n",
			e.ID, truncate(e.Title, 32), e.Date, e.Status, e.Capacity, e.Location)
	}
}

func printPageFooter(meta platform.PageMeta) {
	if meta.Pages <= 1 {
		return
	}
	fmt.Printf("\nPage %d of %d (%d total)\n", meta.Page, meta.Pages, meta.Total)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func stringPtr(cmd *cobra.Command, name string) *string {
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func addEventFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "event title")
	cmd.Flags().String("description", "", "event description")
	cmd.Flags().String("date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "event start time (HH:MM)")
	cmd.Flags().String("location", "", "event location")
	cmd.Flags().Int("capacity", 0, "number of seats")
	cmd.Flags().String("price", "", "ticket price")
	cmd.Flags().String("image-url", "", "cover image URL")
}

func init() {
	eventsListCmd.Flags().String("status", "", "filter by status (draft, published, cancelled, completed)")
	eventsListCmd.Flags().Int("organizer", 0, "filter by organizer id")
	eventsListCmd.Flags().Int("university", 0, "filter by university id")
	eventsListCmd.Flags().String("start-date", "", "earliest event date (YYYY-MM-DD)")
	eventsListCmd.Flags().String("end-date", "", "latest event date (YYYY-MM-DD)")
	eventsListCmd.Flags().String("order-by", "", "sort column")
	eventsListCmd.Flags().String("direction", "", "sort direction (asc, desc)")
	eventsListCmd.Flags().Int("page", 1, "page number")
	eventsListCmd.Flags().Int("page-size", 20, "results per page")

	addEventFieldFlags(eventsCreateCmd)
	addEventFieldFlags(eventsUpdateCmd)

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsGetCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsUpdateCmd)
	eventsCmd.AddCommand(eventsStatusCmd)
	eventsCmd.AddCommand(eventsDeleteCmd)

	rootCmd.AddCommand(eventsCmd)
}
