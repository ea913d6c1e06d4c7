package app

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/encore/internal/config"
	"github.com/zjrosen/encore/internal/marquee"
	"github.com/zjrosen/encore/internal/mocks"
	"github.com/zjrosen/encore/internal/pubsub"
	"github.com/zjrosen/encore/internal/seating"
	"github.com/zjrosen/encore/internal/ui/seatmap"
	"github.com/zjrosen/encore/internal/ui/toaster"
)

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) Model {
	t.Helper()

	mockBO := mocks.NewMockBoxOffice(t)
	mockBO.EXPECT().Capacity().Return(40)

	cfg := config.Defaults()
	cfg.AutoRefresh = false

	return New(cfg, mockBO, nil, nil, "")
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_NoWatcherWhenAutoRefreshDisabled(t *testing.T) {
	m := newTestApp(t)

	assert.Nil(t, m.watcherHandle)
	assert.Nil(t, m.watcherCh)
}

func TestUpdate_AnimateKeyStartsMarquee(t *testing.T) {
	m := newTestApp(t)

	updated, cmd := m.Update(runeKey('a'))
	require.NotNil(t, cmd)

	view := updated.(Model).View()
	assert.Contains(t, view, "playing")
}

func TestUpdate_LoopKeyShowsLooping(t *testing.T) {
	m := newTestApp(t)

	updated, cmd := m.Update(runeKey('l'))
	require.NotNil(t, cmd)

	view := updated.(Model).View()
	assert.Contains(t, view, "looping")
}

func TestUpdate_FlipKeyReversesTitle(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(runeKey('f'))

	view := updated.(Model).View()
	assert.Contains(t, view, "YLNO THGINOT")
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestApp(t)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(runeKey('?'))
	assert.Contains(t, updated.(Model).View(), "play marquee")

	updated, _ = updated.(Model).Update(runeKey('?'))
	assert.NotContains(t, updated.(Model).View(), "play marquee")
}

func TestUpdate_ReserveErrorShowsToast(t *testing.T) {
	m := newTestApp(t)

	updated, cmd := m.Update(seatmap.ReserveResultMsg{Err: &seating.SeatTakenError{Number: 7}})
	require.NotNil(t, cmd)

	view := updated.(Model).View()
	assert.Contains(t, view, "Seat 7 is already taken")
}

func TestUpdate_ReserveNotFoundToastMatchesAPIBody(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(seatmap.ReserveResultMsg{Err: &seating.SeatNotFoundError{Number: 99}})

	view := updated.(Model).View()
	assert.Contains(t, view, "Could not find 99")
}

func TestUpdate_UnknownReserveErrorShowsGenericToast(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(seatmap.ReserveResultMsg{Err: errors.New("db locked")})

	view := updated.(Model).View()
	assert.Contains(t, view, "Reservation failed")
}

func TestUpdate_SeatEventShowsToast(t *testing.T) {
	mockBO := mocks.NewMockBoxOffice(t)
	mockBO.EXPECT().Capacity().Return(40)

	cfg := config.Defaults()
	cfg.AutoRefresh = false

	broker := pubsub.NewBroker[seating.Seat]()
	defer broker.Close()

	m := New(cfg, mockBO, broker, nil, "")
	defer m.Close()

	updated, cmd := m.Update(pubsub.Event[seating.Seat]{
		Type:    pubsub.ReservedEvent,
		Payload: seating.Seat{Number: 7, UserID: "piers"},
	})
	require.NotNil(t, cmd)

	view := updated.(Model).View()
	assert.Contains(t, view, "Seat 7 reserved for piers")
}

func TestUpdate_DismissHidesToast(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(seatmap.ReserveResultMsg{Err: &seating.SeatTakenError{Number: 7}})
	updatedModel := updated.(Model)
	assert.True(t, updatedModel.toaster.Visible())

	updated, _ = updatedModel.Update(toaster.DismissMsg{})
	assert.False(t, updated.(Model).toaster.Visible())
}

func TestClose_NoWatcherIsSafe(t *testing.T) {
	m := newTestApp(t)

	require.NoError(t, m.Close())
}

func TestProgram_RendersSeatsAndQuits(t *testing.T) {
	mockBO := mocks.NewMockBoxOffice(t)
	mockBO.EXPECT().Capacity().Return(40)
	mockBO.EXPECT().ListSeats(mock.Anything).Return([]seating.Seat{{Number: 3, UserID: "margo"}}, nil)

	cfg := config.Defaults()
	cfg.AutoRefresh = false

	m := New(cfg, mockBO, nil, nil, "")
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("1 of 40 reserved"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(runeKey('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestUpdate_TriggerEventReArmsListener(t *testing.T) {
	mockBO := mocks.NewMockBoxOffice(t)
	mockBO.EXPECT().Capacity().Return(40)

	cfg := config.Defaults()
	cfg.AutoRefresh = false

	broker := pubsub.NewBroker[marquee.Trigger]()
	defer broker.Close()

	m := New(cfg, mockBO, nil, broker, "")
	defer m.Close()
	require.NotNil(t, m.marqueeListener)

	// Published triggers reach the model through the listener command.
	go broker.Publish(pubsub.TriggeredEvent, marquee.Trigger{Slot: marquee.SlotShake, Count: 1, Run: 1})
	msg := m.marqueeListener.Listen()()
	event, ok := msg.(pubsub.Event[marquee.Trigger])
	require.True(t, ok)
	assert.Equal(t, marquee.SlotShake, event.Payload.Slot)

	// Handling the event re-arms the listener for the next trigger.
	_, cmd := m.Update(event)
	require.NotNil(t, cmd)
}
