package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRamp_FadeInReachesTargetExactly(t *testing.T) {
	r := Ramp{From: 0, To: 0.7, Step: 0.05, Interval: 100 * time.Millisecond}

	v := r.From
	var steps int
	for {
		next, done := r.Next(v)
		require.GreaterOrEqual(t, next, v, "fade-in must not go down")
		v = next
		steps++
		if done {
			break
		}
		require.Less(t, steps, 100, "ramp did not terminate")
	}

	assert.Equal(t, 0.7, v)
	assert.Equal(t, 14, steps)
	assert.Equal(t, r.Steps(), steps)
	assert.Equal(t, 1400*time.Millisecond, r.Duration())
}

func TestRamp_FadeOut(t *testing.T) {
	r := Ramp{From: 0.3, To: 0, Step: 0.05, Interval: 100 * time.Millisecond}

	v := r.From
	for i := 0; i < r.Steps(); i++ {
		v, _ = r.Next(v)
	}
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 6, r.Steps())
}

func TestRamp_AlreadyAtTarget(t *testing.T) {
	r := Ramp{From: 0.7, To: 0.7, Step: 0.05}
	next, done := r.Next(0.7)
	assert.True(t, done)
	assert.Equal(t, 0.7, next)
	assert.Equal(t, 0, r.Steps())
}

func TestRamp_NormalizeFixesDegenerateParameters(t *testing.T) {
	r := Ramp{From: -1, To: 2, Step: 0, Interval: 0}.Normalize()
	assert.Equal(t, 0.0, r.From)
	assert.Equal(t, 1.0, r.To)
	assert.Equal(t, DefaultRampStep, r.Step)
	assert.Equal(t, 100*time.Millisecond, r.Interval)

	neg := Ramp{From: 0, To: 1, Step: -0.25}.Normalize()
	assert.Equal(t, 0.25, neg.Step)
}

func TestClampVolume(t *testing.T) {
	assert.Equal(t, 0.0, ClampVolume(-0.5))
	assert.Equal(t, 1.0, ClampVolume(1.5))
	assert.Equal(t, 0.3, ClampVolume(0.3))
}

func TestNop(t *testing.T) {
	var n Nop
	n.SetVolume(3)
	assert.Equal(t, 1.0, n.Volume())
	assert.ErrorIs(t, n.Play(), ErrSilent)
	assert.NoError(t, n.Rewind())
}

// TestProperty_RampTerminatesWithoutOvershoot checks that any ramp reaches its
// target within Steps() calls and never leaves the [from, to] interval.
func TestProperty_RampTerminatesWithoutOvershoot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := rapid.Float64Range(0, 1).Draw(t, "from")
		to := rapid.Float64Range(0, 1).Draw(t, "to")
		step := rapid.Float64Range(0.001, 1).Draw(t, "step")
		r := Ramp{From: from, To: to, Step: step, Interval: time.Millisecond}

		lo, hi := from, to
		if lo > hi {
			lo, hi = hi, lo
		}

		v := from
		done := from == to
		for i := 0; i < r.Steps(); i++ {
			v, done = r.Next(v)
			if v < lo-1e-9 || v > hi+1e-9 {
				t.Fatalf("volume %v left [%v, %v]", v, lo, hi)
			}
		}
		if !done || v != to {
			t.Fatalf("ramp from %v to %v step %v ended at %v (done=%v) after %d steps", from, to, step, v, done, r.Steps())
		}
	})
}
