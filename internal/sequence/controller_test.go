package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/script"
)

func newTestController() Controller {
	return NewController(script.Default(), DefaultTimings())
}

// run feeds events through the controller and returns the final state and
// every effect emitted along the way.
func run(c Controller, st State, events ...Event) (State, []Effect) {
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		st, effects = c.Step(st, ev)
		all = append(all, effects...)
	}
	return st, all
}

func schedules(effects []Effect) []Schedule {
	var out []Schedule
	for _, e := range effects {
		if s, ok := e.(Schedule); ok {
			out = append(out, s)
		}
	}
	return out
}

func indexOf(effects []Effect, target Effect) int {
	for i, e := range effects {
		if e == target {
			return i
		}
	}
	return -1
}

func TestNew_DefaultsToFullForUnknownVariant(t *testing.T) {
	st := New("nonsense")
	assert.Equal(t, VariantFull, st.Variant)
	assert.Equal(t, PhaseOpening, st.Phase)
	assert.NotNil(t, st.Removed)
}

func TestOpening_FirstClickUnlocksAudioAndSchedulesThoughts(t *testing.T) {
	c := newTestController()
	st, effects := c.Step(New(VariantFull), Advance())

	assert.True(t, st.AudioUnlocked)
	assert.True(t, st.Navigating)
	assert.Equal(t, PhaseOpening, st.Phase, "phase changes only when the timer fires")

	setIdle := indexOf(effects, SetVolume{Track: audio.TrackIdle, Volume: 0.3})
	playIdle := indexOf(effects, Play{Track: audio.TrackIdle})
	require.GreaterOrEqual(t, setIdle, 0)
	require.Greater(t, playIdle, setIdle, "volume must be set before playback starts")
	setBloom := indexOf(effects, SetVolume{Track: audio.TrackBloom, Volume: 0})
	primeBloom := indexOf(effects, Play{Track: audio.TrackBloom})
	require.GreaterOrEqual(t, setBloom, 0)
	require.Greater(t, primeBloom, setBloom, "bloom is silenced before it is primed")
	assert.Greater(t, indexOf(effects, Pause{Track: audio.TrackBloom}), primeBloom)

	assert.Equal(t, []Schedule{{Key: TimerEnterThoughts, After: time.Second}}, schedules(effects))

	st, _ = c.Step(st, Timer(TimerEnterThoughts))
	assert.Equal(t, PhaseThoughts, st.Phase)
	assert.False(t, st.Navigating)
	assert.Equal(t, 0, st.ThoughtStep)
}

func TestOpening_RepeatedClicksScheduleOnce(t *testing.T) {
	c := newTestController()
	st, effects := run(c, New(VariantFull), Advance(), Advance(), Advance())

	assert.Len(t, schedules(effects), 1)
	assert.Equal(t, 3, st.Clicks)
}

func TestThoughts_RevealsLinesThenSchedulesGame(t *testing.T) {
	c := newTestController()
	st, _ := run(c, New(VariantFull), Advance(), Timer(TimerEnterThoughts))

	for want := 1; want <= 3; want++ {
		var effects []Effect
		st, effects = c.Step(st, Advance())
		assert.Equal(t, want, st.ThoughtStep)
		assert.Equal(t, PhaseThoughts, st.Phase)
		assert.Empty(t, effects)
	}

	// Counter at the last index: the next click leaves.
	st, effects := c.Step(st, Advance())
	assert.Equal(t, 3, st.ThoughtStep)
	assert.True(t, st.Navigating)
	play := indexOf(effects, Play{Track: audio.TrackBloom})
	sched := indexOf(effects, Schedule{Key: TimerEnterGame, After: time.Second})
	require.GreaterOrEqual(t, play, 0)
	require.Greater(t, sched, play, "bloom play is requested before the transition is scheduled")

	// Clicking again while waiting does not stack another timer.
	_, effects = c.Step(st, Advance())
	assert.Empty(t, effects)

	st, _ = c.Step(st, Timer(TimerEnterGame))
	assert.Equal(t, PhaseGame, st.Phase)
	assert.False(t, st.ExitScheduled)
}

func toGame(t *testing.T, c Controller) State {
	t.Helper()
	st, _ := run(c, New(VariantFull), Advance(), Timer(TimerEnterThoughts))
	for i := 0; i < len(c.Script.Thoughts); i++ {
		st, _ = c.Step(st, Advance())
	}
	st, _ = c.Step(st, Timer(TimerEnterGame))
	require.Equal(t, PhaseGame, st.Phase)
	return st
}

func TestGame_ThirteenPetalsScheduleBridge(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	assert.Equal(t, "We should leave it to fate.", c.PetalStatus(st))

	var effects []Effect
	for i := 0; i < 13; i++ {
		st, effects = c.Step(st, Petal(i))
		if i < 12 {
			assert.Empty(t, schedules(effects), "petal %d", i)
		}
		assert.Contains(t, effects, Chime{Sound: SoundPluck})
	}

	assert.Equal(t, 13, st.Removed.Len())
	assert.Equal(t, "She loves me.", c.PetalStatus(st))
	assert.Equal(t, []Schedule{{Key: TimerEnterBridge, After: 1500 * time.Millisecond}}, schedules(effects))

	st, _ = c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseBridge, st.Phase)
}

func TestGame_RepluckIsNoop(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)

	st, _ = c.Step(st, Petal(4))
	again, effects := c.Step(st, Petal(4))

	assert.Equal(t, 1, again.Removed.Len())
	assert.Empty(t, effects)
	assert.Equal(t, "She loves me", c.PetalStatus(again))
}

func TestGame_OutOfRangePetalIgnored(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)

	for _, i := range []int{-1, 13, 99} {
		next, effects := c.Step(st, Petal(i))
		assert.Equal(t, 0, next.Removed.Len())
		assert.Empty(t, effects)
	}
}

func TestGame_AdvanceIsNoop(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)

	next, effects := c.Step(st, Advance())
	assert.Equal(t, PhaseGame, next.Phase)
	assert.Empty(t, effects)
}

func TestPetal_OutsideGameIsNoop(t *testing.T) {
	c := newTestController()
	st, effects := c.Step(New(VariantFull), Petal(0))
	assert.Equal(t, 0, st.Removed.Len())
	assert.Empty(t, effects)
}

func TestPetal_DoesNotMutateInputState(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	_, _ = c.Step(st, Petal(2))
	assert.Equal(t, 0, st.Removed.Len())
}

func toBridge(t *testing.T, c Controller) State {
	t.Helper()
	st := toGame(t, c)
	for i := 0; i < c.Script.Petals.Count; i++ {
		st, _ = c.Step(st, Petal(i))
	}
	st, _ = c.Step(st, Timer(TimerEnterBridge))
	require.Equal(t, PhaseBridge, st.Phase)
	return st
}

func TestBridge_TransitionOverlayAndAsk(t *testing.T) {
	c := newTestController()
	st := toBridge(t, c)

	st, effects := c.Step(st, Advance())
	assert.Equal(t, 1, st.BridgeStep)
	assert.Empty(t, effects)

	st, effects = c.Step(st, Advance())
	assert.True(t, st.Transitioning)
	assert.Equal(t, []Schedule{
		{Key: TimerEnterAsk, After: 1500 * time.Millisecond},
		{Key: TimerOverlayEnd, After: 3000 * time.Millisecond},
	}, schedules(effects))

	_, effects = c.Step(st, Advance())
	assert.Empty(t, effects, "exhausted bridge must not reschedule")

	st, effects = c.Step(st, Timer(TimerEnterAsk))
	assert.Equal(t, PhaseAsk, st.Phase)
	assert.True(t, st.Started)
	assert.True(t, st.MessageVisible)
	assert.True(t, st.Transitioning, "overlay is still fading out")

	setBloom := indexOf(effects, SetVolume{Track: audio.TrackBloom, Volume: 0})
	playBloom := indexOf(effects, Play{Track: audio.TrackBloom})
	require.GreaterOrEqual(t, setBloom, 0)
	require.Greater(t, playBloom, setBloom)

	var fade *Fade
	for _, e := range effects {
		if f, ok := e.(Fade); ok {
			fade = &f
		}
	}
	require.NotNil(t, fade)
	assert.Equal(t, audio.TrackBloom, fade.Track)
	assert.Equal(t, 0.0, fade.Ramp.From)
	assert.Equal(t, 0.7, fade.Ramp.To)
	assert.Equal(t, 0.05, fade.Ramp.Step)
	assert.Equal(t, 100*time.Millisecond, fade.Ramp.Interval)
	assert.Contains(t, effects, Chime{Sound: SoundChime})

	st, _ = c.Step(st, Timer(TimerOverlayEnd))
	assert.False(t, st.Transitioning)
}

func TestAsk_IsTerminal(t *testing.T) {
	c := newTestController()
	st := toBridge(t, c)
	st, _ = run(c, st, Advance(), Advance(), Timer(TimerEnterAsk))
	require.True(t, st.Terminal())

	next, effects := c.Step(st, Advance())
	assert.Equal(t, PhaseAsk, next.Phase)
	assert.Empty(t, effects)
}

func TestTimer_StaleTimersIgnored(t *testing.T) {
	c := newTestController()
	st := New(VariantFull)

	for _, k := range []TimerKey{TimerEnterGame, TimerEnterBridge, TimerEnterAsk, TimerRevealMessage, "unknown"} {
		next, effects := c.Step(st, Timer(k))
		assert.Equal(t, PhaseOpening, next.Phase, "timer %s", k)
		assert.Empty(t, effects)
	}
}

func TestTimer_EnterBridgeRequiresAllPetals(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	st, _ = c.Step(st, Petal(0))

	next, _ := c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseGame, next.Phase)
}

func TestRoseVariant(t *testing.T) {
	c := newTestController()
	st := New(VariantRose)

	st, effects := c.Step(st, Advance())
	assert.Equal(t, PhaseRose, st.Phase)
	assert.Equal(t, 1, st.Progress())
	assert.True(t, st.AudioUnlocked)
	assert.Contains(t, effects, Play{Track: audio.TrackIdle})

	st, effects = c.Step(st, Advance())
	assert.Equal(t, PhaseAsk, st.Phase)
	assert.Equal(t, 2, st.Progress())
	assert.True(t, st.MessageVisible)
	assert.True(t, st.Started)
	assert.Contains(t, effects, Play{Track: audio.TrackBloom})

	st, effects = c.Step(st, Advance())
	assert.Equal(t, 2, st.Progress(), "ceiling of 2")
	assert.Empty(t, effects)
}

func TestGardenVariant(t *testing.T) {
	c := newTestController()
	st := New(VariantGarden)
	assert.False(t, st.Started)

	st, effects := c.Step(st, Advance())
	assert.Equal(t, PhaseAsk, st.Phase)
	assert.True(t, st.Started)
	assert.True(t, st.AudioUnlocked)
	assert.False(t, st.MessageVisible, "message waits for the reveal timer")
	assert.Equal(t, []Schedule{{Key: TimerRevealMessage, After: 6 * time.Second}}, schedules(effects))

	_, effects = c.Step(st, Advance())
	assert.Empty(t, effects)

	st, _ = c.Step(st, Timer(TimerRevealMessage))
	assert.True(t, st.MessageVisible)
}

func TestClamp_AfterScriptShrinks(t *testing.T) {
	c := newTestController()
	st := New(VariantFull)
	st.ThoughtStep = 3
	st.BridgeStep = 1

	short := *script.Default()
	short.Thoughts = []string{"one", "two"}
	short.Bridge = []string{"only"}
	c.Script = &short

	st, effects := c.Clamp(st)
	assert.Equal(t, 1, st.ThoughtStep)
	assert.Equal(t, 0, st.BridgeStep)
	assert.Empty(t, effects)
}

func TestClamp_FewerPetalsMidGame(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	for i := 6; i <= 11; i++ {
		st, _ = c.Step(st, Petal(i))
	}

	short := *script.Default()
	short.Petals.Count = 5
	c.Script = &short

	st, effects := c.Clamp(st)
	assert.Equal(t, 0, st.Removed.Len(), "petals beyond the new count are dropped")
	assert.Empty(t, effects)

	for i := 0; i < 5; i++ {
		st, effects = c.Step(st, Petal(i))
	}
	assert.Equal(t, 5, st.Removed.Len())
	assert.Equal(t, short.Petals.Final, c.PetalStatus(st))
	assert.Equal(t, []Schedule{{Key: TimerEnterBridge, After: 1500 * time.Millisecond}}, schedules(effects))

	st, _ = c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseBridge, st.Phase)
}

func TestClamp_ShrinkCompletesTheGame(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	for i := 0; i < 4; i++ {
		st, _ = c.Step(st, Petal(i))
	}

	short := *script.Default()
	short.Petals.Count = 3
	c.Script = &short

	st, effects := c.Clamp(st)
	assert.Equal(t, 3, st.Removed.Len())
	assert.True(t, st.ExitScheduled)
	assert.Equal(t, []Schedule{{Key: TimerEnterBridge, After: 1500 * time.Millisecond}}, schedules(effects))

	st, effects = c.Clamp(st)
	assert.Empty(t, effects, "a second clamp does not reschedule")

	st, _ = c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseBridge, st.Phase)
}

func TestClamp_MorePetalsAfterExitScheduled(t *testing.T) {
	c := newTestController()
	st := toGame(t, c)
	for i := 0; i < 13; i++ {
		st, _ = c.Step(st, Petal(i))
	}
	require.True(t, st.ExitScheduled)

	long := *script.Default()
	long.Petals.Count = 15
	c.Script = &long

	st, effects := c.Clamp(st)
	assert.Empty(t, effects)
	assert.False(t, st.ExitScheduled)

	st, _ = c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseGame, st.Phase, "the old enter-bridge is stale")

	st, effects = c.Step(st, Petal(13))
	assert.Empty(t, schedules(effects))
	st, effects = c.Step(st, Petal(14))
	assert.Equal(t, []Schedule{{Key: TimerEnterBridge, After: 1500 * time.Millisecond}}, schedules(effects))

	st, _ = c.Step(st, Timer(TimerEnterBridge))
	assert.Equal(t, PhaseBridge, st.Phase)
}

func TestTimings_Scale(t *testing.T) {
	tm := DefaultTimings().Scale(0.5)
	assert.Equal(t, 500*time.Millisecond, tm.EnterThoughts)
	assert.Equal(t, 3*time.Second, tm.RevealMessage)
	assert.Equal(t, 50*time.Millisecond, tm.FadeInterval)
	assert.Equal(t, 0.3, tm.IdleVolume)

	assert.Equal(t, DefaultTimings(), DefaultTimings().Scale(0))
}

func TestVariant_Phases(t *testing.T) {
	assert.Equal(t, []Phase{PhaseOpening, PhaseThoughts, PhaseGame, PhaseBridge, PhaseAsk}, VariantFull.Phases())
	assert.Len(t, VariantRose.Phases(), 3)
	assert.Len(t, VariantGarden.Phases(), 2)

	next, ok := VariantFull.Next(PhaseGame)
	assert.True(t, ok)
	assert.Equal(t, PhaseBridge, next)

	_, ok = VariantFull.Next(PhaseAsk)
	assert.False(t, ok)

	v, ok := ParseVariant("rose")
	assert.True(t, ok)
	assert.Equal(t, VariantRose, v)
	_, ok = ParseVariant("tulip")
	assert.False(t, ok)
}

func TestEffect_Strings(t *testing.T) {
	assert.Equal(t, "play(bloom)", Play{Track: audio.TrackBloom}.String())
	assert.Equal(t, "pause(bloom)", Pause{Track: audio.TrackBloom}.String())
	assert.Equal(t, "volume(idle, 0.30)", SetVolume{Track: audio.TrackIdle, Volume: 0.3}.String())
	assert.Equal(t, "schedule(enter-game, 1s)", Schedule{Key: TimerEnterGame, After: time.Second}.String())
}
