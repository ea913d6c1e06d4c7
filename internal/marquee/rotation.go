package marquee

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// rotateResetMsg clears the rotation flag. Run guards against resets
// from a cancelled rotation.
type rotateResetMsg struct {
	run int
}

// RotationGuard flips the card for a fixed window, self-resetting.
// Rotate while a flip is in flight is a silent no-op, so at most one
// pending reset exists at a time.
type RotationGuard struct {
	window   time.Duration
	rotating bool
	lastRun  int
}

// NewRotationGuard creates a guard with the given flip window.
func NewRotationGuard(window time.Duration) RotationGuard {
	return RotationGuard{window: window}
}

// Rotate flips the card and schedules the reset.
func (g RotationGuard) Rotate() (RotationGuard, tea.Cmd) {
	if g.rotating {
		return g, nil
	}
	g.rotating = true
	g.lastRun++
	return g, tick(g.window, rotateResetMsg{run: g.lastRun})
}

// Rotating reports whether the card is currently flipped.
func (g RotationGuard) Rotating() bool {
	return g.rotating
}

// Window returns the configured flip window.
func (g RotationGuard) Window() time.Duration {
	return g.window
}

// Cancel clears the flag and invalidates any pending reset, for
// component teardown.
func (g RotationGuard) Cancel() RotationGuard {
	g.rotating = false
	g.lastRun++
	return g
}

// Update processes reset messages.
func (g RotationGuard) Update(msg tea.Msg) (RotationGuard, tea.Cmd) {
	if reset, ok := msg.(rotateResetMsg); ok {
		if reset.run == g.lastRun && g.rotating {
			g.rotating = false
		}
	}
	return g, nil
}
