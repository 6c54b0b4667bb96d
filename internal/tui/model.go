package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yasminaliabdi/event-planner/internal/guard"
	"github.com/yasminaliabdi/event-planner/internal/platform"
	"github.com/yasminaliabdi/event-planner/internal/session"
)

// Messages delivered to the dashboard model
type (
	// sessionMsg signals that the session changed; the model re-reads the
	// authoritative snapshot and re-evaluates the guard.
	sessionMsg struct{}

	eventsLoadedMsg   struct{ page *platform.Paginated[platform.Event] }
	bookingsLoadedMsg struct{ page *platform.Paginated[platform.Booking] }
	statsLoadedMsg    struct{ stats *platform.AdminStats }
	loadFailedMsg     struct{ err error }
)

// Model is the dashboard TUI state. The guarded content renders only once the
// session settles and the guard allows it; until then a neutral waiting
// indicator is shown.
type Model struct {
	ctx      context.Context
	sessions *session.Manager
	client   *platform.Client

	snap     session.Snapshot
	decision guard.Decision
	route    string

	updates     chan session.Snapshot
	unsubscribe func()

	spin     spinner.Model
	events   table.Model
	bookings table.Model
	stats    *platform.AdminStats

	loadErr  string
	loading  bool
	width    int
	height   int
	quitting bool

	styles Styles
}

// New creates the dashboard model wired to the given session manager and
// backend client.
func New(ctx context.Context, sessions *session.Manager, client *platform.Client) *Model {
	styles := DefaultStyles()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Status

	updates := make(chan session.Snapshot, 16)
	unsubscribe := sessions.Subscribe(func(snap session.Snapshot) {
		// The channel is only a wake-up; the model re-reads Current on
		// receipt, so a dropped send loses nothing.
		select {
		case updates <- snap:
		default:
		}
	})

	m := &Model{
		ctx:         ctx,
		sessions:    sessions,
		client:      client,
		updates:     updates,
		unsubscribe: unsubscribe,
		spin:        spin,
		events:      newEventsTable(),
		bookings:    newBookingsTable(),
		styles:      styles,
	}
	m.applySnapshot(sessions.Current())
	return m
}

// Run starts the dashboard and blocks until it exits.
func Run(ctx context.Context, sessions *session.Manager, client *platform.Client) error {
	m := New(ctx, sessions, client)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init restores the session in the background and starts listening for
// session changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.restoreSession(), m.waitForSession())
}

func (m *Model) restoreSession() tea.Cmd {
	return func() tea.Msg {
		m.sessions.Initialize(m.ctx)
		return sessionMsg{}
	}
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.updates; !ok {
			return nil
		}
		return sessionMsg{}
	}
}

// applySnapshot re-evaluates the guard against the latest session state.
func (m *Model) applySnapshot(snap session.Snapshot) {
	m.snap = snap
	m.decision = guard.Evaluate(snap, nil)
	if m.decision.State == guard.Allowed {
		m.route = guard.DefaultRouteForRole(snap.Identity.Role)
	} else {
		m.route = ""
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.decision.State == guard.Allowed {
				return m, m.loadContent()
			}
		case "L":
			if m.decision.State == guard.Allowed {
				m.sessions.Logout()
			}
		}
		return m.updateTables(msg)

	case sessionMsg:
		wasAllowed := m.decision.State == guard.Allowed
		m.applySnapshot(m.sessions.Current())
		cmds := []tea.Cmd{m.waitForSession()}
		if m.decision.State == guard.Allowed && !wasAllowed {
			cmds = append(cmds, m.loadContent())
		}
		return m, tea.Batch(cmds...)

	case eventsLoadedMsg:
		m.loading = false
		m.events.SetRows(eventRows(msg.page.Data))
		return m, nil

	case bookingsLoadedMsg:
		m.loading = false
		m.bookings.SetRows(bookingRows(msg.page.Data))
		return m, nil

	case statsLoadedMsg:
		m.loading = false
		m.stats = msg.stats
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateTables(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.events, cmd = m.events.Update(msg)
	cmds = append(cmds, cmd)
	m.bookings, cmd = m.bookings.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// loadContent fetches the role-specific dashboard content.
func (m *Model) loadContent() tea.Cmd {
	m.loading = true
	m.loadErr = ""

	switch m.snap.Identity.Role {
	case platform.RoleAdmin:
		return tea.Batch(m.loadStats(), m.loadAdminEvents())
	case platform.RoleUniversity:
		return m.loadOwnEvents()
	default:
		return tea.Batch(m.loadPublishedEvents(), m.loadMyBookings())
	}
}

func (m *Model) loadPublishedEvents() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.ListEvents(m.ctx, platform.EventFilters{
			Status:   platform.EventPublished,
			PageSize: 50,
		})
		if err != nil {
			return loadFailedMsg{err}
		}
		return eventsLoadedMsg{page}
	}
}

func (m *Model) loadOwnEvents() tea.Cmd {
	organizerID := m.snap.Identity.ID
	return func() tea.Msg {
		page, err := m.client.ListEvents(m.ctx, platform.EventFilters{
			OrganizerID: organizerID,
			PageSize:    50,
		})
		if err != nil {
			return loadFailedMsg{err}
		}
		return eventsLoadedMsg{page}
	}
}

func (m *Model) loadAdminEvents() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.AdminListEvents(m.ctx, 1, 50, "")
		if err != nil {
			return loadFailedMsg{err}
		}
		return eventsLoadedMsg{page}
	}
}

func (m *Model) loadMyBookings() tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.MyBookings(m.ctx, 1, 50)
		if err != nil {
			return loadFailedMsg{err}
		}
		return bookingsLoadedMsg{page}
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.client.AdminStats(m.ctx)
		if err != nil {
			return loadFailedMsg{err}
		}
		return statsLoadedMsg{stats}
	}
}

func newEventsTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Title", Width: 32},
			{Title: "Date", Width: 11},
			{Title: "Status", Width: 11},
			{Title: "Seats", Width: 6},
		}),
		table.WithHeight(10),
		table.WithFocused(true),
	)
}

func newBookingsTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Event", Width: 32},
			{Title: "Seats", Width: 6},
			{Title: "Status", Width: 11},
		}),
		table.WithHeight(6),
	)
}

func eventRows(events []platform.Event) []table.Row {
	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, table.Row{
			strconv.Itoa(e.ID), e.Title, e.Date, string(e.Status), strconv.Itoa(e.Capacity),
		})
	}
	return rows
}

func bookingRows(bookings []platform.Booking) []table.Row {
	rows := make([]table.Row, 0, len(bookings))
	for _, b := range bookings {
		title := "#" + strconv.Itoa(b.EventID)
		if b.Event != nil {
			title = b.Event.Title
		}
		rows = append(rows, table.Row{
			strconv.Itoa(b.ID), title, strconv.Itoa(b.Seats), string(b.Status),
		})
	}
	return rows
}
