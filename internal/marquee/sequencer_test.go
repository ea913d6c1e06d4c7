package marquee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/encore/internal/pubsub"
)

// fastTimings keeps scheduled ticks short; tests never wait on them,
// they drive the step messages directly.
func fastTimings() Timings {
	return Timings{
		ShakeDuration:  20 * time.Millisecond,
		BounceDuration: 40 * time.Millisecond,
		TadaDuration:   30 * time.Millisecond,
		ShakeGap:       20 * time.Millisecond,
		BounceGap:      30 * time.Millisecond,
		LoopGap:        30 * time.Millisecond,
	}
}

func TestPlay_FiresShakeImmediately(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)

	s, cmd := s.Play(false)

	assert.Equal(t, 1, s.Counter(SlotShake))
	assert.Equal(t, 0, s.Counter(SlotBounce))
	assert.Equal(t, 0, s.Counter(SlotTada))
	assert.True(t, s.Active(SlotShake))
	assert.True(t, s.Playing())
	require.NotNil(t, cmd, "play must schedule the next step")
}

func TestPlay_StepChainIncrementsEachSlotOnce(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(false)

	s, cmd := s.Update(stepMsg{slot: SlotBounce, run: s.run})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, s.Counter(SlotBounce))
	assert.True(t, s.Active(SlotBounce))

	s, _ = s.Update(stepMsg{slot: SlotTada, run: s.run})
	assert.Equal(t, 1, s.Counter(SlotTada))
	assert.True(t, s.Active(SlotTada))

	// Bounce keeps running while tada starts - the designed overlap.
	assert.True(t, s.Active(SlotBounce))
}

func TestPlay_TerminalAfterTadaCompletes(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(false)
	s, _ = s.Update(stepMsg{slot: SlotBounce, run: s.run})
	s, _ = s.Update(stepMsg{slot: SlotTada, run: s.run})

	s, _ = s.Update(effectEndMsg{slot: SlotTada, run: s.run})

	assert.False(t, s.Playing())
	assert.False(t, s.Active(SlotTada))
}

func TestPlay_ForeverLoopsTimeline(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(true)

	for cycle := 1; cycle <= 3; cycle++ {
		assert.Equal(t, cycle, s.Counter(SlotShake))
		s, _ = s.Update(stepMsg{slot: SlotBounce, run: s.run})
		s, _ = s.Update(stepMsg{slot: SlotTada, run: s.run})
		assert.Equal(t, cycle, s.Counter(SlotBounce))
		assert.Equal(t, cycle, s.Counter(SlotTada))

		// Tada finishing does not end a looping run.
		s, _ = s.Update(effectEndMsg{slot: SlotTada, run: s.run})
		assert.True(t, s.Playing())

		s, _ = s.Update(stepMsg{slot: SlotShake, run: s.run})
	}
}

func TestPlay_IgnoredWhileRunInFlight(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(false)

	s2, cmd := s.Play(true)

	assert.Nil(t, cmd)
	assert.Equal(t, 1, s2.Counter(SlotShake), "re-entrant play must not re-fire")
	assert.False(t, s2.Forever(), "ignored call must not change loop mode")
}

func TestPlay_SequentialRunsEachIncrement(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)

	for run := 1; run <= 3; run++ {
		s, _ = s.Play(false)
		s, _ = s.Update(stepMsg{slot: SlotBounce, run: s.run})
		s, _ = s.Update(stepMsg{slot: SlotTada, run: s.run})
		s, _ = s.Update(effectEndMsg{slot: SlotTada, run: s.run})

		assert.Equal(t, run, s.Counter(SlotShake))
		assert.Equal(t, run, s.Counter(SlotBounce))
		assert.Equal(t, run, s.Counter(SlotTada))
		assert.False(t, s.Playing())
	}
}

func TestStop_DropsPendingSteps(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(true)
	staleRun := s.run

	s = s.Stop()
	assert.False(t, s.Playing())
	assert.False(t, s.Active(SlotShake))

	s, cmd := s.Update(stepMsg{slot: SlotBounce, run: staleRun})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.Counter(SlotBounce), "ticks from a stopped run must be dropped")
}

func TestStop_StaleRunCannotTouchNewRun(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(false)
	staleRun := s.run
	s = s.Stop()

	s, _ = s.Play(false)
	assert.Equal(t, 2, s.Counter(SlotShake))

	s, _ = s.Update(effectEndMsg{slot: SlotShake, run: staleRun})
	assert.True(t, s.Active(SlotShake), "stale effect end must not clear the new run's effect")
}

func TestEffectEnd_ClearsActiveFlag(t *testing.T) {
	s := NewSequencer(fastTimings(), nil)
	s, _ = s.Play(false)

	s, _ = s.Update(effectEndMsg{slot: SlotShake, run: s.run})

	assert.False(t, s.Active(SlotShake))
	assert.True(t, s.Playing(), "shake ending does not end the run")
}

func TestPlay_PublishesTriggersOnBroker(t *testing.T) {
	broker := pubsub.NewBroker[Trigger]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	s := NewSequencer(fastTimings(), broker)
	s, _ = s.Play(false)
	s, _ = s.Update(stepMsg{slot: SlotBounce, run: s.run})

	want := []Slot{SlotShake, SlotBounce}
	for _, slot := range want {
		select {
		case ev := <-ch:
			assert.Equal(t, pubsub.TriggeredEvent, ev.Type)
			assert.Equal(t, slot, ev.Payload.Slot)
			assert.Equal(t, 1, ev.Payload.Count)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s trigger", slot)
		}
	}
}

func TestDefaultTimings_OverlapContract(t *testing.T) {
	timings := DefaultTimings()

	assert.Equal(t, timings.ShakeDuration, timings.ShakeGap,
		"bounce starts exactly when shake ends")
	assert.Equal(t, timings.BounceDuration-time.Second, timings.BounceGap,
		"tada starts one second before bounce ends")
	assert.Equal(t, 2*time.Second, timings.duration(SlotShake))
	assert.Equal(t, 4*time.Second, timings.duration(SlotBounce))
	assert.Equal(t, 3*time.Second, timings.duration(SlotTada))
}

// TestSequencer_CountersMonotonic is a property-based test using rapid.
// Arbitrary interleavings of play, stop, and timeline messages - including
// stale and fabricated run ids - must never decrease a trigger counter.
func TestSequencer_CountersMonotonic(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		s := NewSequencer(fastTimings(), nil)
		prev := [slotCount]int{}

		numOps := rapid.IntRange(1, 60).Draw(r, "numOps")
		for i := 0; i < numOps; i++ {
			slot := Slot(rapid.IntRange(0, slotCount-1).Draw(r, "slot"))

			switch rapid.IntRange(0, 4).Draw(r, "op") {
			case 0:
				s, _ = s.Play(rapid.Bool().Draw(r, "forever"))
			case 1:
				s = s.Stop()
			case 2:
				s, _ = s.Update(stepMsg{slot: slot, run: s.run})
			case 3:
				s, _ = s.Update(stepMsg{slot: slot, run: rapid.IntRange(0, 5).Draw(r, "run")})
			case 4:
				s, _ = s.Update(effectEndMsg{slot: slot, run: rapid.IntRange(0, 5).Draw(r, "run")})
			}

			for check := SlotShake; check <= SlotTada; check++ {
				if got := s.Counter(check); got < prev[check] {
					r.Fatalf("counter for %s decreased: %d -> %d", check, prev[check], got)
				} else {
					prev[check] = got
				}
			}
		}
	})
}
