package sequence

import (
	"time"

	"github.com/zjrosen/valentine/internal/audio"
)

// Timings holds every delay and audio level the controller uses.
type Timings struct {
	EnterThoughts time.Duration
	EnterGame     time.Duration
	EnterBridge   time.Duration
	EnterAsk      time.Duration
	OverlayEnd    time.Duration
	RevealMessage time.Duration

	IdleVolume   float64
	BloomTarget  float64
	FadeStep     float64
	FadeInterval time.Duration
}

// DefaultTimings returns the delays the greeting was designed around.
func DefaultTimings() Timings {
	return Timings{
		EnterThoughts: 1000 * time.Millisecond,
		EnterGame:     1000 * time.Millisecond,
		EnterBridge:   1500 * time.Millisecond,
		EnterAsk:      1500 * time.Millisecond,
		OverlayEnd:    3000 * time.Millisecond,
		RevealMessage: 6000 * time.Millisecond,
		IdleVolume:    0.3,
		BloomTarget:   0.7,
		FadeStep:      0.05,
		FadeInterval:  100 * time.Millisecond,
	}
}

// Scale multiplies every delay by f, leaving volumes alone.
func (t Timings) Scale(f float64) Timings {
	if f <= 0 {
		return t
	}
	mul := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	t.EnterThoughts = mul(t.EnterThoughts)
	t.EnterGame = mul(t.EnterGame)
	t.EnterBridge = mul(t.EnterBridge)
	t.EnterAsk = mul(t.EnterAsk)
	t.OverlayEnd = mul(t.OverlayEnd)
	t.RevealMessage = mul(t.RevealMessage)
	t.FadeInterval = mul(t.FadeInterval)
	return t
}

// BloomFadeIn is the ramp that brings the bloom track up when the garden starts.
func (t Timings) BloomFadeIn() audio.Ramp {
	return audio.Ramp{From: 0, To: t.BloomTarget, Step: t.FadeStep, Interval: t.FadeInterval}.Normalize()
}
