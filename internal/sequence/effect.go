package sequence

import (
	"fmt"
	"time"

	"github.com/zjrosen/valentine/internal/audio"
)

// Effect is a side effect requested by Step. Effects are executed in order
// and are fire-and-forget.
type Effect interface {
	fmt.Stringer
	effect()
}

// Schedule asks for Timer(Key) to be delivered after the delay.
type Schedule struct {
	Key   TimerKey
	After time.Duration
}

// SetVolume sets a track's volume.
type SetVolume struct {
	Track  audio.Track
	Volume float64
}

// Play starts (or resumes) a track.
type Play struct {
	Track audio.Track
}

// Pause pauses a track.
type Pause struct {
	Track audio.Track
}

// Fade runs a volume ramp on a track, replacing any ramp already running on it.
type Fade struct {
	Track audio.Track
	Ramp  audio.Ramp
}

// Chime plays a one-shot sound effect.
type Chime struct {
	Sound string
}

func (Schedule) effect()  {}
func (SetVolume) effect() {}
func (Play) effect()      {}
func (Pause) effect()     {}
func (Fade) effect()      {}
func (Chime) effect()     {}

func (e Schedule) String() string  { return fmt.Sprintf("schedule(%s, %s)", e.Key, e.After) }
func (e SetVolume) String() string { return fmt.Sprintf("volume(%s, %.2f)", e.Track, e.Volume) }
func (e Play) String() string      { return fmt.Sprintf("play(%s)", e.Track) }
func (e Pause) String() string     { return fmt.Sprintf("pause(%s)", e.Track) }
func (e Fade) String() string {
	return fmt.Sprintf("fade(%s, %.2f->%.2f)", e.Track, e.Ramp.From, e.Ramp.To)
}
func (e Chime) String() string { return fmt.Sprintf("chime(%s)", e.Sound) }
