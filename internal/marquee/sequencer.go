package marquee

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/pubsub"
)

// stepMsg advances the timeline to the given slot. Run guards against
// messages from cancelled or superseded runs.
type stepMsg struct {
	slot Slot
	run  int
}

// effectEndMsg marks a slot's effect as finished.
type effectEndMsg struct {
	slot Slot
	run  int
}

// Sequencer fires the three marquee effects on a fixed, overlapping
// timeline, optionally looping forever. All scheduling happens through
// tea.Tick on the single Bubble Tea event loop; there is no shared state
// to synchronize.
//
// Each run carries an id. Stop invalidates the current id, so tick
// messages from a stopped run are dropped when they arrive - the
// cancellable handle the fire-and-forget original lacked.
type Sequencer struct {
	timings  Timings
	counters [slotCount]int
	active   [slotCount]bool
	run      int // id of the in-flight run; 0 when idle
	lastRun  int // monotonic run id source
	forever  bool
	broker   *pubsub.Broker[Trigger]
}

// NewSequencer creates a sequencer with the given timing profile.
// The broker may be nil when nobody needs trigger notifications.
func NewSequencer(timings Timings, broker *pubsub.Broker[Trigger]) Sequencer {
	return Sequencer{
		timings: timings,
		broker:  broker,
	}
}

// Play starts the timeline: shake now, bounce one shake-gap later, tada
// one bounce-gap after that. With forever set, the whole timeline
// restarts one loop-gap after tada fires.
//
// Calls made while a run is in flight are ignored; Stop first to restart.
func (s Sequencer) Play(forever bool) (Sequencer, tea.Cmd) {
	if s.Playing() {
		log.Debug(log.CatMarquee, "play ignored, run in flight", "run", s.run)
		return s, nil
	}
	s.lastRun++
	s.run = s.lastRun
	s.forever = forever
	log.Debug(log.CatMarquee, "play", "run", s.run, "forever", forever)
	return s.fire(SlotShake)
}

// Playing reports whether a run is in flight.
func (s Sequencer) Playing() bool {
	return s.run != 0
}

// Forever reports whether the in-flight run loops.
func (s Sequencer) Forever() bool {
	return s.Playing() && s.forever
}

// Stop cancels the in-flight run. Already-scheduled tick messages still
// arrive but are dropped as stale.
func (s Sequencer) Stop() Sequencer {
	if s.run != 0 {
		log.Debug(log.CatMarquee, "stop", "run", s.run)
	}
	s.run = 0
	s.active = [slotCount]bool{}
	return s
}

// Counter returns the trigger counter for a slot. Counters never
// decrease; only the increments carry meaning.
func (s Sequencer) Counter(slot Slot) int {
	return s.counters[slot]
}

// Active reports whether the slot's effect is currently running.
func (s Sequencer) Active(slot Slot) bool {
	return s.active[slot]
}

// Update processes timeline tick messages.
func (s Sequencer) Update(msg tea.Msg) (Sequencer, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		if msg.run != s.run {
			return s, nil // stale: run was stopped or superseded
		}
		return s.fire(msg.slot)

	case effectEndMsg:
		if msg.run != s.run {
			return s, nil
		}
		s.active[msg.slot] = false
		// The sequence is terminal once tada's effect completes.
		if msg.slot == SlotTada && !s.forever {
			s.run = 0
		}
		return s, nil
	}
	return s, nil
}

// fire increments the slot counter, notifies subscribers, and schedules
// the next step from inside this step's handler, which fixes the
// ordering of steps within a run by construction.
func (s Sequencer) fire(slot Slot) (Sequencer, tea.Cmd) {
	s.counters[slot]++
	s.active[slot] = true
	if s.broker != nil {
		s.broker.Publish(pubsub.TriggeredEvent, Trigger{
			Slot:  slot,
			Count: s.counters[slot],
			Run:   s.run,
		})
	}

	run := s.run
	cmds := []tea.Cmd{
		tick(s.timings.duration(slot), effectEndMsg{slot: slot, run: run}),
	}

	switch slot {
	case SlotShake:
		cmds = append(cmds, tick(s.timings.ShakeGap, stepMsg{slot: SlotBounce, run: run}))
	case SlotBounce:
		cmds = append(cmds, tick(s.timings.BounceGap, stepMsg{slot: SlotTada, run: run}))
	case SlotTada:
		if s.forever {
			cmds = append(cmds, tick(s.timings.LoopGap, stepMsg{slot: SlotShake, run: run}))
		}
	}

	return s, tea.Batch(cmds...)
}
