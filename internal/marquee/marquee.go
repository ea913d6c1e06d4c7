// Package marquee implements the animated marquee card shown on the kiosk
// front: a three-effect trigger sequence and a self-resetting card flip.
package marquee

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Slot identifies one of the three marquee effect slots.
type Slot int

const (
	// SlotShake is the first slot in the timeline.
	SlotShake Slot = iota
	// SlotBounce fires one shake-gap after shake.
	SlotBounce
	// SlotTada fires one bounce-gap after bounce, overlapping its tail.
	SlotTada
)

// slotCount is the number of effect slots in one timeline run.
const slotCount = 3

func (s Slot) String() string {
	switch s {
	case SlotShake:
		return "shake"
	case SlotBounce:
		return "bounce"
	case SlotTada:
		return "tada"
	default:
		return "unknown"
	}
}

// Trigger is published on the broker each time an effect slot fires.
// Count is the slot's trigger counter after the increment; it only ever
// grows for the lifetime of the sequencer.
type Trigger struct {
	Slot  Slot
	Count int
	Run   int
}

// Timings is the marquee timing profile. Durations say how long each
// effect stays active; gaps say how long after one trigger the next one
// fires. The renderer's effect profiles must match these for the
// designed bounce/tada overlap to happen.
type Timings struct {
	ShakeDuration  time.Duration
	BounceDuration time.Duration
	TadaDuration   time.Duration
	ShakeGap       time.Duration
	BounceGap      time.Duration
	LoopGap        time.Duration
}

// DefaultTimings matches the marquee's designed timeline: shake 2s,
// bounce 4s, tada 3s, with tada starting 1s before bounce ends.
func DefaultTimings() Timings {
	return Timings{
		ShakeDuration:  2 * time.Second,
		BounceDuration: 4 * time.Second,
		TadaDuration:   3 * time.Second,
		ShakeGap:       2 * time.Second,
		BounceGap:      3 * time.Second,
		LoopGap:        3 * time.Second,
	}
}

// duration returns how long the slot's effect stays active.
func (t Timings) duration(slot Slot) time.Duration {
	switch slot {
	case SlotShake:
		return t.ShakeDuration
	case SlotBounce:
		return t.BounceDuration
	default:
		return t.TadaDuration
	}
}

// tick schedules msg after d on the Bubble Tea event loop.
func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
