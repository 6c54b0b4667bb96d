package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yasminaliabdi/event-planner/internal/guard"
	"github.com/yasminaliabdi/event-planner/internal/platform"
)

// Styles contains lipgloss styles for the dashboard
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// View renders the dashboard according to the guard's current decision.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.decision.State {
	case guard.Pending:
		return m.renderPending()
	case guard.Denied:
		return m.renderDenied()
	default:
		return m.renderDashboard()
	}
}

// renderPending shows only a neutral waiting indicator; no redirect hint is
// ever rendered while the session is still being restored.
func (m *Model) renderPending() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Event Planner"))
	b.WriteString("\n\n")
	b.WriteString(m.spin.View())
	b.WriteString(m.styles.Muted.Render(" Restoring session…"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderDenied() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Event Planner"))
	b.WriteString("\n\n")

	if m.decision.RedirectTo == guard.LoginRoute {
		b.WriteString("Not signed in.\n\n")
		b.WriteString(m.styles.Muted.Render("Run 'eventplanner auth login' and reopen the dashboard."))
	} else {
		b.WriteString("This area is not available to your account.\n\n")
		b.WriteString(m.styles.Muted.Render("Redirecting to " + m.decision.RedirectTo))
	}

	if m.snap.LastError != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render(m.snap.LastError))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderDashboard() string {
	var b strings.Builder

	identity := m.snap.Identity
	b.WriteString(m.styles.Title.Render("Event Planner " + m.route))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%s <%s> (%s)", identity.Name, identity.Email, identity.Role)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Muted.Render(" Loading…"))
		b.WriteString("\n\n")
	}

	switch identity.Role {
	case platform.RoleAdmin:
		b.WriteString(m.renderStats())
		b.WriteString(m.styles.Status.Render("All events"))
		b.WriteString("\n")
		b.WriteString(m.events.View())
	case platform.RoleUniversity:
		b.WriteString(m.styles.Status.Render("Your events"))
		b.WriteString("\n")
		b.WriteString(m.events.View())
	default:
		b.WriteString(m.styles.Status.Render("Upcoming events"))
		b.WriteString("\n")
		b.WriteString(m.events.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Status.Render("Your bookings"))
		b.WriteString("\n")
		b.WriteString(m.bookings.View())
	}

	if m.loadErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.loadErr))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("r refresh • L log out • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderStats() string {
	if m.stats == nil {
		return ""
	}
	line := fmt.Sprintf("Users %d • Universities %d • Events %d (%d active) • Bookings %d (%d pending)",
		m.stats.TotalUsers, m.stats.TotalUniversities,
		m.stats.TotalEvents, m.stats.ActiveEvents,
		m.stats.TotalBookings, m.stats.PendingBookings)
	return m.styles.Border.Render(line) + "\n\n"
}
