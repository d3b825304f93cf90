package audio

import (
	"math"
	"time"
)

// DefaultRampStep is used when a ramp is built with a non-positive step.
const DefaultRampStep = 0.05

// Ramp describes a bounded, repeating volume adjustment from From to To.
// A ramp always terminates: Next clamps at To and Steps is finite.
type Ramp struct {
	From     float64
	To       float64
	Step     float64
	Interval time.Duration
}

// Normalize clamps the endpoints to [0, 1] and replaces a non-positive step
// or interval with defaults.
func (r Ramp) Normalize() Ramp {
	r.From = ClampVolume(r.From)
	r.To = ClampVolume(r.To)
	r.Step = math.Abs(r.Step)
	if r.Step == 0 {
		r.Step = DefaultRampStep
	}
	if r.Interval <= 0 {
		r.Interval = 100 * time.Millisecond
	}
	return r
}

// Next returns the volume one step after v, moving toward To. done is true
// once the returned volume equals To.
func (r Ramp) Next(v float64) (next float64, done bool) {
	r = r.Normalize()
	switch {
	case v < r.To:
		next = v + r.Step
		if next >= r.To-1e-9 {
			return r.To, true
		}
		return next, false
	case v > r.To:
		next = v - r.Step
		if next <= r.To+1e-9 {
			return r.To, true
		}
		return next, false
	default:
		return r.To, true
	}
}

// Steps returns how many Next calls take From to To.
func (r Ramp) Steps() int {
	r = r.Normalize()
	dist := math.Abs(r.To - r.From)
	if dist == 0 {
		return 0
	}
	return max(1, int(math.Ceil(dist/r.Step-1e-9)))
}

// Duration is the wall time the full ramp takes.
func (r Ramp) Duration() time.Duration {
	r = r.Normalize()
	return time.Duration(r.Steps()) * r.Interval
}
