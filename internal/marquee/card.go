package marquee

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/encore/internal/config"
	"github.com/zjrosen/encore/internal/pubsub"
	"github.com/zjrosen/encore/internal/ui/styles"
)

// Card is the marquee card component: a title that plays the effect
// timeline and flips while the rotation guard is active.
type Card struct {
	seq   Sequencer
	guard RotationGuard
	title string
	width int
}

// NewCard builds the card from the marquee config.
func NewCard(cfg config.MarqueeConfig, broker *pubsub.Broker[Trigger]) Card {
	timings := Timings{
		ShakeDuration:  cfg.ShakeDuration,
		BounceDuration: cfg.BounceDuration,
		TadaDuration:   cfg.TadaDuration,
		ShakeGap:       cfg.ShakeGap,
		BounceGap:      cfg.BounceGap,
		LoopGap:        cfg.LoopGap,
	}
	return Card{
		seq:   NewSequencer(timings, broker),
		guard: NewRotationGuard(cfg.RotateWindow),
		title: cfg.Title,
	}
}

// Play starts a single timeline run.
func (c Card) Play() (Card, tea.Cmd) {
	var cmd tea.Cmd
	c.seq, cmd = c.seq.Play(false)
	return c, cmd
}

// PlayForever starts a looping timeline run.
func (c Card) PlayForever() (Card, tea.Cmd) {
	var cmd tea.Cmd
	c.seq, cmd = c.seq.Play(true)
	return c, cmd
}

// Rotate flips the card for the configured window.
func (c Card) Rotate() (Card, tea.Cmd) {
	var cmd tea.Cmd
	c.guard, cmd = c.guard.Rotate()
	return c, cmd
}

// Stop cancels any in-flight run and pending flip reset. Called on
// teardown so stray ticks cannot mutate a dead component.
func (c Card) Stop() Card {
	c.seq = c.seq.Stop()
	c.guard = c.guard.Cancel()
	return c
}

// Sequencer exposes the underlying sequencer state for status display.
func (c Card) Sequencer() Sequencer {
	return c.seq
}

// Rotating reports whether the card is currently flipped.
func (c Card) Rotating() bool {
	return c.guard.Rotating()
}

// SetWidth updates the rendered card width.
func (c Card) SetWidth(width int) Card {
	c.width = width
	return c
}

// Update processes timeline and rotation messages.
func (c Card) Update(msg tea.Msg) (Card, tea.Cmd) {
	var seqCmd, guardCmd tea.Cmd
	c.seq, seqCmd = c.seq.Update(msg)
	c.guard, guardCmd = c.guard.Update(msg)
	return c, tea.Batch(seqCmd, guardCmd)
}

// View renders the card: title, one badge per effect slot with its
// trigger count, and a status line.
func (c Card) View() string {
	title := c.title
	if c.guard.Rotating() {
		title = reverse(title)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.HighlightColor)
	if c.guard.Rotating() {
		titleStyle = titleStyle.Reverse(true)
	}

	badges := make([]string, 0, slotCount)
	for _, slot := range []Slot{SlotShake, SlotBounce, SlotTada} {
		label := fmt.Sprintf("%s ×%d", slot, c.seq.Counter(slot))
		if c.seq.Active(slot) {
			badges = append(badges, styles.BadgeActive.Render(label))
		} else {
			badges = append(badges, styles.Badge.Render(label))
		}
	}

	status := "idle"
	switch {
	case c.seq.Forever():
		status = "looping"
	case c.seq.Playing():
		status = "playing"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		styles.Subtle.Render(status),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SubtleColor).
		Padding(0, 2)
	if c.seq.Playing() {
		border = border.BorderForeground(styles.HighlightColor)
	}
	if c.width > 4 {
		border = border.Width(c.width - 2)
	}

	return border.Render(body)
}

func reverse(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i := len(runes) - 1; i >= 0; i-- {
		sb.WriteRune(runes[i])
	}
	return sb.String()
}
