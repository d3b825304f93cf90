package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// cycle is the shared seekable cursor of the finite generators below.
type cycle struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func (c *cycle) Len() int      { return c.samples }
func (c *cycle) Position() int { return c.pos }
func (c *cycle) Err() error    { return nil }

func (c *cycle) Seek(p int) error {
	if p < 0 || p > c.samples {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, c.samples)
	}
	c.pos = p
	return nil
}

// PadGenerator is the idle track: a soft A minor chord that swells and fades
// over an eight second cycle. The envelope is zero at both ends so looping
// does not click.
type PadGenerator struct {
	cycle
}

// NewPadGenerator creates the idle pad at sample rate sr.
func NewPadGenerator(sr beep.SampleRate) *PadGenerator {
	return &PadGenerator{cycle{sr: sr, samples: sr.N(8 * time.Second)}}
}

var padChord = []float64{220.00, 261.63, 329.63, 440.00}

func (g *PadGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		cyclePos := float64(g.pos) / float64(g.samples)

		env := math.Pow(math.Sin(cyclePos*math.Pi), 2)
		sample := 0.0
		for k, f := range padChord {
			// Slight detune per voice for width.
			sample += math.Sin(2*math.Pi*(f+0.3*float64(k))*t) / float64(len(padChord))
		}
		sample *= 0.25 * env

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// MusicBoxGenerator is the bloom track: a plucked C major arpeggio with a
// bell-like decay on every note.
type MusicBoxGenerator struct {
	cycle
	noteLen int
}

var musicBoxNotes = []float64{
	523.25, 659.25, 783.99, 1046.50, 783.99, 659.25,
	587.33, 698.46, 880.00, 1174.66, 880.00, 698.46,
	523.25, 659.25, 783.99, 987.77, 1046.50, 783.99,
	659.25, 523.25,
}

// NewMusicBoxGenerator creates the bloom arpeggio at sample rate sr.
func NewMusicBoxGenerator(sr beep.SampleRate) *MusicBoxGenerator {
	noteLen := sr.N(400 * time.Millisecond)
	return &MusicBoxGenerator{
		cycle:   cycle{sr: sr, samples: noteLen * len(musicBoxNotes)},
		noteLen: noteLen,
	}
}

func (g *MusicBoxGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		note := musicBoxNotes[g.pos/g.noteLen]
		nt := float64(g.pos%g.noteLen) / float64(g.sr)

		env := math.Exp(-nt * 6)
		sample := 0.6*math.Sin(2*math.Pi*note*nt) + 0.2*math.Sin(2*math.Pi*note*2*nt)
		sample *= 0.3 * env

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}
