// Package seatmap renders the venue seat grid and drives reservations.
//
// The model follows the Elm architecture: all box office calls run inside
// commands, and their results come back as messages. Reserving a seat is a
// two-step flow: picking a seat (cursor or mouse) opens a text input for the
// patron name, and confirming fires the reserve command.
package seatmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/encore/internal/keys"
	"github.com/zjrosen/encore/internal/seating"
	"github.com/zjrosen/encore/internal/ui/styles"
)

// SeatsLoadedMsg carries the result of a seat list fetch.
type SeatsLoadedMsg struct {
	Seats []seating.Seat
	Err   error
}

// ReserveResultMsg carries the result of a reservation attempt.
type ReserveResultMsg struct {
	Seat *seating.Seat
	Err  error
}

// ReleaseResultMsg carries the result of releasing a seat.
type ReleaseResultMsg struct {
	Number int
	Err    error
}

// Model is the seat map component.
type Model struct {
	boxOffice   seating.BoxOffice
	keys        keys.KeyMap
	seatsPerRow int
	capacity    int
	reserved    map[int]seating.Seat
	cursor      int // 1-based seat number
	loading     bool
	spinner     spinner.Model
	input       textinput.Model
	prompting   bool
	pendingSeat int
}

// New creates a seat map for the given box office.
func New(boxOffice seating.BoxOffice, seatsPerRow int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.HighlightColor)

	ti := textinput.New()
	ti.Placeholder = "patron name"
	ti.CharLimit = 64
	ti.Width = 24

	if seatsPerRow < 1 {
		seatsPerRow = 8
	}

	return Model{
		boxOffice:   boxOffice,
		keys:        keys.DefaultKeyMap(),
		seatsPerRow: seatsPerRow,
		capacity:    boxOffice.Capacity(),
		reserved:    map[int]seating.Seat{},
		cursor:      1,
		loading:     true,
		spinner:     s,
		input:       ti,
	}
}

// Init starts the spinner and fetches the seat list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// Reload refetches the seat list, e.g. after the watcher reports a change.
func (m Model) Reload() (Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

// Prompting reports whether the patron name input is open. While true the
// parent must route key events here before matching its own bindings.
func (m Model) Prompting() bool {
	return m.prompting
}

// Cursor returns the currently selected seat number.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		seats, err := m.boxOffice.ListSeats(context.Background())
		return SeatsLoadedMsg{Seats: seats, Err: err}
	}
}

func (m Model) reserveCmd(userID string, number int) tea.Cmd {
	return func() tea.Msg {
		seat, err := m.boxOffice.ReserveSeat(context.Background(), userID, number)
		return ReserveResultMsg{Seat: seat, Err: err}
	}
}

func (m Model) releaseCmd(number int) tea.Cmd {
	return func() tea.Msg {
		err := m.boxOffice.ReleaseSeat(context.Background(), number)
		return ReleaseResultMsg{Number: number, Err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SeatsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.reserved = make(map[int]seating.Seat, len(msg.Seats))
		for _, seat := range msg.Seats {
			m.reserved[seat.Number] = seat
		}
		return m, nil

	case ReserveResultMsg:
		if msg.Err == nil && msg.Seat != nil {
			m.reserved[msg.Seat.Number] = *msg.Seat
		}
		return m, nil

	case ReleaseResultMsg:
		if msg.Err == nil {
			delete(m.reserved, msg.Number)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.prompting {
		switch {
		case key.Matches(msg, m.keys.Reserve):
			userID := strings.TrimSpace(m.input.Value())
			if userID == "" {
				return m, nil
			}
			number := m.pendingSeat
			m.prompting = false
			m.input.Blur()
			return m, m.reserveCmd(userID, number)
		case key.Matches(msg, m.keys.Escape):
			m.prompting = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor-m.seatsPerRow >= 1 {
			m.cursor -= m.seatsPerRow
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+m.seatsPerRow <= m.capacity {
			m.cursor += m.seatsPerRow
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 1 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < m.capacity {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Reserve):
		return m.beginReserve(m.cursor)
	case key.Matches(msg, m.keys.Release):
		if _, ok := m.reserved[m.cursor]; ok {
			return m, m.releaseCmd(m.cursor)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.Reload()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for number := 1; number <= m.capacity; number++ {
		if z := zone.Get(seatZoneID(number)); z != nil && z.InBounds(msg) {
			m.cursor = number
			if _, ok := m.reserved[number]; ok {
				return m, nil
			}
			return m.beginReserve(number)
		}
	}

	return m, nil
}

func (m Model) beginReserve(number int) (Model, tea.Cmd) {
	if _, ok := m.reserved[number]; ok {
		return m, nil
	}

	m.prompting = true
	m.pendingSeat = number
	m.input.SetValue("")
	return m, m.input.Focus()
}

func seatZoneID(number int) string {
	return fmt.Sprintf("seat:%d", number)
}

// View renders the seat grid.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.PaneTitle.Render("Seats"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(styles.Subtle.Render(" loading seats..."))
		return b.String()
	}

	for start := 1; start <= m.capacity; start += m.seatsPerRow {
		cells := make([]string, 0, m.seatsPerRow)
		for number := start; number < start+m.seatsPerRow && number <= m.capacity; number++ {
			label := fmt.Sprintf("%2d", number)

			style := styles.SeatFree
			if _, ok := m.reserved[number]; ok {
				style = styles.SeatReserved
			}
			if number == m.cursor {
				style = style.Reverse(true)
			}

			cells = append(cells, zone.Mark(seatZoneID(number), style.Render(label)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(styles.StatusBar.Render(fmt.Sprintf("%d of %d reserved", len(m.reserved), m.capacity)))

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Reserve seat %d for: %s", m.pendingSeat, m.input.View()))
	}

	return b.String()
}
