package sequence

import (
	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/script"
)

// Sound effect names understood by the sound package.
const (
	SoundPluck = "pluck"
	SoundChime = "chime"
)

// Controller holds the fixed inputs of the state machine.
type Controller struct {
	Script  *script.Script
	Timings Timings
}

// NewController returns a controller for s with the given timings.
// A nil script means the embedded default.
func NewController(s *script.Script, t Timings) Controller {
	if s == nil {
		s = script.Default()
	}
	return Controller{Script: s, Timings: t}
}

// Step applies ev to st and returns the new state and the effects to run.
// st is not modified.
func (c Controller) Step(st State, ev Event) (State, []Effect) {
	next := st
	switch ev.Kind {
	case EventAdvance:
		next.Clicks++
		return c.advance(next)
	case EventPetal:
		return c.petal(next, ev.Petal)
	case EventTimer:
		return c.timer(next, ev.Timer)
	}
	return next, nil
}

// PetalStatus is the game message for the current state.
func (c Controller) PetalStatus(st State) string {
	return c.Script.PetalStatus(st.Removed.Len())
}

// Clamp fits st to the current script after it is swapped out mid-session.
// Step counters are bounded by the new line counts and plucked petals beyond
// the new petal count are dropped. A game whose petal set is now complete
// schedules its exit; one that is no longer complete may schedule it again.
func (c Controller) Clamp(st State) (State, []Effect) {
	st.ThoughtStep = clampStep(st.ThoughtStep, len(c.Script.Thoughts))
	st.BridgeStep = clampStep(st.BridgeStep, len(c.Script.Bridge))

	count := c.Script.Petals.Count
	kept := make(PetalSet, len(st.Removed))
	for i := range st.Removed {
		if i >= 0 && i < count {
			kept[i] = struct{}{}
		}
	}
	st.Removed = kept

	if st.Phase != PhaseGame {
		return st, nil
	}
	full := st.Removed.Len() >= count
	switch {
	case full && !st.ExitScheduled:
		st.ExitScheduled = true
		return st, []Effect{Schedule{Key: TimerEnterBridge, After: c.Timings.EnterBridge}}
	case !full && st.ExitScheduled:
		// The pending enter-bridge will arrive stale; the last petal reschedules.
		st.ExitScheduled = false
	}
	return st, nil
}

func clampStep(step, lines int) int {
	if step > lines-1 {
		step = lines - 1
	}
	if step < 0 {
		step = 0
	}
	return step
}

func (c Controller) advance(st State) (State, []Effect) {
	switch st.Variant {
	case VariantRose:
		return c.advanceRose(st)
	case VariantGarden:
		return c.advanceGarden(st)
	}

	switch st.Phase {
	case PhaseOpening:
		if st.ExitScheduled {
			return st, nil
		}
		effects := c.unlock(&st)
		st.Navigating = true
		st.ExitScheduled = true
		return st, append(effects, Schedule{Key: TimerEnterThoughts, After: c.Timings.EnterThoughts})

	case PhaseThoughts:
		if st.ThoughtStep < len(c.Script.Thoughts)-1 {
			st.ThoughtStep++
			return st, nil
		}
		if st.ExitScheduled {
			return st, nil
		}
		st.Navigating = true
		st.ExitScheduled = true
		return st, []Effect{
			Play{Track: audio.TrackBloom},
			Schedule{Key: TimerEnterGame, After: c.Timings.EnterGame},
		}

	case PhaseBridge:
		if st.BridgeStep < len(c.Script.Bridge)-1 {
			st.BridgeStep++
			return st, nil
		}
		if st.ExitScheduled {
			return st, nil
		}
		st.Transitioning = true
		st.ExitScheduled = true
		return st, []Effect{
			Schedule{Key: TimerEnterAsk, After: c.Timings.EnterAsk},
			Schedule{Key: TimerOverlayEnd, After: c.Timings.OverlayEnd},
		}
	}

	// The game advances on petals only, and ask is terminal.
	return st, nil
}

func (c Controller) advanceRose(st State) (State, []Effect) {
	switch st.Phase {
	case PhaseOpening:
		effects := c.unlock(&st)
		st = enter(st, PhaseRose)
		return st, effects
	case PhaseRose:
		st = enter(st, PhaseAsk)
		st.MessageVisible = true
		return st, c.startGarden(&st)
	}
	return st, nil
}

func (c Controller) advanceGarden(st State) (State, []Effect) {
	if st.Phase != PhaseOpening {
		return st, nil
	}
	st.AudioUnlocked = true
	st = enter(st, PhaseAsk)
	effects := c.startGarden(&st)
	return st, append(effects, Schedule{Key: TimerRevealMessage, After: c.Timings.RevealMessage})
}

func (c Controller) petal(st State, i int) (State, []Effect) {
	if st.Phase != PhaseGame || i < 0 || i >= c.Script.Petals.Count || st.Removed.Has(i) {
		return st, nil
	}
	st.Removed = st.Removed.with(i)
	effects := []Effect{Chime{Sound: SoundPluck}}
	if st.Removed.Len() >= c.Script.Petals.Count && !st.ExitScheduled {
		st.ExitScheduled = true
		effects = append(effects, Schedule{Key: TimerEnterBridge, After: c.Timings.EnterBridge})
	}
	return st, effects
}

func (c Controller) timer(st State, key TimerKey) (State, []Effect) {
	switch key {
	case TimerEnterThoughts:
		if st.Phase == PhaseOpening && st.Variant == VariantFull {
			return enter(st, PhaseThoughts), nil
		}
	case TimerEnterGame:
		if st.Phase == PhaseThoughts {
			return enter(st, PhaseGame), nil
		}
	case TimerEnterBridge:
		if st.Phase == PhaseGame && st.Removed.Len() >= c.Script.Petals.Count {
			return enter(st, PhaseBridge), nil
		}
	case TimerEnterAsk:
		if st.Phase == PhaseBridge {
			st = enter(st, PhaseAsk)
			st.MessageVisible = true
			return st, c.startGarden(&st)
		}
	case TimerOverlayEnd:
		st.Transitioning = false
		return st, nil
	case TimerRevealMessage:
		if st.Phase == PhaseAsk && st.Started {
			st.MessageVisible = true
			return st, nil
		}
	}
	// Stale or foreign timer.
	return st, nil
}

// unlock is the first-interaction audio start. The bloom track is primed
// silently with a play and pause. Later calls only restart the idle loop.
func (c Controller) unlock(st *State) []Effect {
	if st.AudioUnlocked {
		return []Effect{
			SetVolume{Track: audio.TrackIdle, Volume: c.Timings.IdleVolume},
			Play{Track: audio.TrackIdle},
		}
	}
	st.AudioUnlocked = true
	return []Effect{
		SetVolume{Track: audio.TrackIdle, Volume: c.Timings.IdleVolume},
		Play{Track: audio.TrackIdle},
		SetVolume{Track: audio.TrackBloom, Volume: 0},
		Play{Track: audio.TrackBloom},
		Pause{Track: audio.TrackBloom},
	}
}

// startGarden marks the garden started and fades the bloom track in.
func (c Controller) startGarden(st *State) []Effect {
	st.Started = true
	return []Effect{
		SetVolume{Track: audio.TrackBloom, Volume: 0},
		Play{Track: audio.TrackBloom},
		Fade{Track: audio.TrackBloom, Ramp: c.Timings.BloomFadeIn()},
		Chime{Sound: SoundChime},
	}
}

func enter(st State, p Phase) State {
	st.Phase = p
	st.Navigating = false
	st.ExitScheduled = false
	return st
}
