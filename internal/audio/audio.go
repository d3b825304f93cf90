// Package audio defines the playback handles the greeting drives and the
// bounded volume ramps used to fade them.
//
// The beep-backed implementation lives in the engine subpackage; this package
// stays free of audio hardware so the sequence controller can depend on it.
package audio

import "errors"

// ErrSilent is returned by Play when no audio device is available.
var ErrSilent = errors.New("audio: running silent")

// Track identifies one of the two independently addressable music handles.
type Track string

const (
	// TrackIdle is the quiet loop that plays from the first interaction.
	TrackIdle Track = "idle"
	// TrackBloom is the track faded in when the garden starts.
	TrackBloom Track = "bloom"
)

// Tracks lists every track in a stable order.
func Tracks() []Track {
	return []Track{TrackIdle, TrackBloom}
}

// Player is a single playback handle.
//
// Play may fail (for example when no device is present); callers treat
// playback as best-effort and discard the error.
type Player interface {
	SetVolume(v float64)
	Volume() float64
	Play() error
	Pause()
	Rewind() error
}

// ClampVolume limits v to [0, 1].
func ClampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Nop is a Player that remembers its volume and never produces sound.
type Nop struct {
	volume float64
}

// SetVolume stores v, clamped to [0, 1].
func (n *Nop) SetVolume(v float64) { n.volume = ClampVolume(v) }

// Volume returns the stored volume.
func (n *Nop) Volume() float64 { return n.volume }

// Play always fails with ErrSilent.
func (n *Nop) Play() error { return ErrSilent }

// Pause is a no-op.
func (n *Nop) Pause() {}

// Rewind is a no-op.
func (n *Nop) Rewind() error { return nil }
