// Package app contains the root application model for the kiosk.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/encore/internal/config"
	"github.com/zjrosen/encore/internal/keys"
	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/marquee"
	"github.com/zjrosen/encore/internal/pubsub"
	"github.com/zjrosen/encore/internal/seating"
	"github.com/zjrosen/encore/internal/ui/seatmap"
	"github.com/zjrosen/encore/internal/ui/styles"
	"github.com/zjrosen/encore/internal/ui/toaster"
	"github.com/zjrosen/encore/internal/watcher"
)

const toastDuration = 3 * time.Second

// Zone IDs for the marquee buttons.
const (
	zoneAnimate = "btn:animate"
	zoneLoop    = "btn:loop"
	zoneFlip    = "btn:flip"
)

// dbChangedMsg signals that the reservations database changed on disk.
type dbChangedMsg struct{}

// Model is the root application state.
type Model struct {
	card    marquee.Card
	seats   seatmap.Model
	toaster toaster.Model
	keys    keys.KeyMap

	width    int
	height   int
	showHelp bool

	// Seating events from the box office (pubsub-based)
	seatCtx      context.Context
	seatCancel   context.CancelFunc
	seatListener *pubsub.ContinuousListener[seating.Seat]

	// Marquee trigger events, consumed for the activity log
	marqueeCtx      context.Context
	marqueeCancel   context.CancelFunc
	marqueeListener *pubsub.ContinuousListener[marquee.Trigger]

	// File watcher for auto-refresh
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}
}

// New creates the root model. dbPath is the database file to watch for
// changes made by other processes; pass an empty path to disable the watcher.
func New(
	cfg config.Config,
	boxOffice seating.BoxOffice,
	seatBroker *pubsub.Broker[seating.Seat],
	marqueeBroker *pubsub.Broker[marquee.Trigger],
	dbPath string,
) Model {
	// Initialize file watcher if auto-refresh is enabled
	var (
		watcherHandle *watcher.Watcher
		watcherCh     <-chan struct{}
	)
	if cfg.AutoRefresh && dbPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(dbPath))
		if err == nil {
			if ch, err := w.Start(); err == nil {
				watcherHandle = w
				watcherCh = ch
			} else {
				_ = w.Stop()
			}
		}
		// Watcher init errors are non-fatal; the kiosk works without auto-refresh
	}

	var (
		seatCtx      context.Context
		seatCancel   context.CancelFunc
		seatListener *pubsub.ContinuousListener[seating.Seat]
	)
	if seatBroker != nil {
		seatCtx, seatCancel = context.WithCancel(context.Background())
		seatListener = pubsub.NewContinuousListener(seatCtx, seatBroker)
	}

	var (
		marqueeCtx      context.Context
		marqueeCancel   context.CancelFunc
		marqueeListener *pubsub.ContinuousListener[marquee.Trigger]
	)
	if marqueeBroker != nil {
		marqueeCtx, marqueeCancel = context.WithCancel(context.Background())
		marqueeListener = pubsub.NewContinuousListener(marqueeCtx, marqueeBroker)
	}

	return Model{
		card:          marquee.NewCard(cfg.Marquee, marqueeBroker),
		seats:         seatmap.New(boxOffice, cfg.Venue.SeatsPerRow),
		toaster:       toaster.New(),
		keys:          keys.DefaultKeyMap(),
		seatCtx:       seatCtx,
		seatCancel:    seatCancel,
		seatListener:  seatListener,

		marqueeCtx:      marqueeCtx,
		marqueeCancel:   marqueeCancel,
		marqueeListener: marqueeListener,

		watcherHandle: watcherHandle,
		watcherCh:     watcherCh,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.seats.Init()}

	if m.seatListener != nil {
		cmds = append(cmds, m.seatListener.Listen())
	}
	if m.marqueeListener != nil {
		cmds = append(cmds, m.marqueeListener.Listen())
	}
	if m.watcherCh != nil {
		cmds = append(cmds, waitForChange(m.watcherCh))
	}

	return tea.Batch(cmds...)
}

// waitForChange blocks on the watcher channel and surfaces a dbChangedMsg.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return dbChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.card = m.card.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dbChangedMsg:
		log.Info(log.CatUI, "database changed, refreshing seats")
		var cmd tea.Cmd
		m.seats, cmd = m.seats.Reload()
		m.toaster = m.toaster.Show("Seat map refreshed", toaster.StyleInfo)
		return m, tea.Batch(cmd, waitForChange(m.watcherCh), toaster.ScheduleDismiss(toastDuration))

	case pubsub.Event[seating.Seat]:
		return m.handleSeatEvent(msg)

	case pubsub.Event[marquee.Trigger]:
		return m.handleTriggerEvent(msg)

	case seatmap.ReserveResultMsg:
		var cmd tea.Cmd
		m.seats, cmd = m.seats.Update(msg)
		if msg.Err != nil {
			m.toaster = m.toaster.Show(reserveErrorMessage(msg.Err), toaster.StyleError)
			return m, tea.Batch(cmd, toaster.ScheduleDismiss(toastDuration))
		}
		return m, cmd

	case seatmap.ReleaseResultMsg:
		var cmd tea.Cmd
		m.seats, cmd = m.seats.Update(msg)
		if msg.Err != nil {
			m.toaster = m.toaster.Show("Could not release seat", toaster.StyleError)
			return m, tea.Batch(cmd, toaster.ScheduleDismiss(toastDuration))
		}
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil
	}

	// Remaining messages are timer ticks for the marquee and spinner/fetch
	// messages for the seat map; both components filter what they handle.
	var cardCmd, seatCmd tea.Cmd
	m.card, cardCmd = m.card.Update(msg)
	m.seats, seatCmd = m.seats.Update(msg)
	return m, tea.Batch(cardCmd, seatCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The patron name prompt captures everything except ctrl+c
	if m.seats.Prompting() && msg.String() != "ctrl+c" {
		var cmd tea.Cmd
		m.seats, cmd = m.seats.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Animate):
		var cmd tea.Cmd
		m.card, cmd = m.card.Play()
		return m, cmd

	case key.Matches(msg, m.keys.Loop):
		var cmd tea.Cmd
		m.card, cmd = m.card.PlayForever()
		return m, cmd

	case key.Matches(msg, m.keys.Flip):
		var cmd tea.Cmd
		m.card, cmd = m.card.Rotate()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		m.card = m.card.Stop()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.seats, cmd = m.seats.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		switch {
		case inZone(zoneAnimate, msg):
			var cmd tea.Cmd
			m.card, cmd = m.card.Play()
			return m, cmd
		case inZone(zoneLoop, msg):
			var cmd tea.Cmd
			m.card, cmd = m.card.PlayForever()
			return m, cmd
		case inZone(zoneFlip, msg):
			var cmd tea.Cmd
			m.card, cmd = m.card.Rotate()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.seats, cmd = m.seats.Update(msg)
	return m, cmd
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m Model) handleSeatEvent(event pubsub.Event[seating.Seat]) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.seatListener.Listen(), toaster.ScheduleDismiss(toastDuration)}

	switch event.Type {
	case pubsub.ReservedEvent:
		m.toaster = m.toaster.Show(
			fmt.Sprintf("Seat %d reserved for %s", event.Payload.Number, event.Payload.UserID),
			toaster.StyleSuccess,
		)
	case pubsub.ReleasedEvent:
		m.toaster = m.toaster.Show(
			fmt.Sprintf("Seat %d released", event.Payload.Number),
			toaster.StyleInfo,
		)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleTriggerEvent(event pubsub.Event[marquee.Trigger]) (tea.Model, tea.Cmd) {
	log.Debug(log.CatMarquee, "marquee trigger",
		"slot", event.Payload.Slot.String(),
		"count", event.Payload.Count,
		"run", event.Payload.Run,
	)
	return m, m.marqueeListener.Listen()
}

// reserveErrorMessage translates reservation errors into toast text.
func reserveErrorMessage(err error) string {
	var (
		taken    *seating.SeatTakenError
		notFound *seating.SeatNotFoundError
		seated   *seating.UserAlreadySeatedError
	)

	switch {
	case errors.As(err, &taken):
		return fmt.Sprintf("Seat %d is already taken", taken.Number)
	case errors.As(err, &notFound):
		return fmt.Sprintf("Could not find %d", notFound.Number)
	case errors.As(err, &seated):
		return fmt.Sprintf("%s already holds seat %d", seated.UserID, seated.Number)
	default:
		return "Reservation failed"
	}
}

// View implements tea.Model.
func (m Model) View() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(zoneAnimate, styles.Badge.Render("[ animate ]")),
		zone.Mark(zoneLoop, styles.Badge.Render("[ loop ]")),
		zone.Mark(zoneFlip, styles.Badge.Render("[ flip ]")),
	)

	sections := []string{
		m.card.View(),
		buttons,
		"",
		m.seats.View(),
	}

	if m.showHelp {
		sections = append(sections, "", m.helpView())
	}

	if m.toaster.Visible() {
		sections = append(sections, "", m.toaster.View())
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) helpView() string {
	bindings := []key.Binding{
		m.keys.Animate, m.keys.Loop, m.keys.Flip,
		m.keys.Reserve, m.keys.Release, m.keys.Refresh,
		m.keys.Quit,
	}

	help := ""
	for i, b := range bindings {
		if i > 0 {
			help += "  "
		}
		help += b.Help().Key + " " + b.Help().Desc
	}

	return styles.Subtle.Render(help)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.seatCancel != nil {
		m.seatCancel()
	}

	if m.marqueeCancel != nil {
		m.marqueeCancel()
	}

	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}

	return nil
}
