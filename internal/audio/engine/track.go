package engine

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/log"
)

// Track is one music handle. It implements audio.Player.
type Track struct {
	engine *Engine
	name   audio.Track
	src    *source
	ctrl   *beep.Ctrl
	gain   *effects.Gain

	volume  float64
	mixed   bool
	drained atomic.Bool
}

var _ audio.Player = (*Track)(nil)

func newTrack(e *Engine, name audio.Track, src *source) *Track {
	t := &Track{engine: e, name: name, src: src}
	t.ctrl = &beep.Ctrl{Streamer: t.sequence(), Paused: true}
	t.gain = &effects.Gain{Streamer: t.ctrl, Gain: -1}
	return t
}

// sequence is the source followed by a marker that records the end.
func (t *Track) sequence() beep.Streamer {
	return beep.Seq(t.src.stream, beep.Callback(func() { t.drained.Store(true) }))
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (t *Track) SetVolume(v float64) {
	v = audio.ClampVolume(v)
	t.engine.withLock(func() {
		t.volume = v
		// effects.Gain multiplies by 1+Gain.
		t.gain.Gain = v - 1
	})
}

// Volume returns the last volume set.
func (t *Track) Volume() float64 {
	var v float64
	t.engine.withLock(func() { v = t.volume })
	return v
}

// Play starts or resumes the track. A track that ran to its end is rewound
// and mixed in again.
func (t *Track) Play() error {
	if t.engine.Silent() {
		return audio.ErrSilent
	}
	var err error
	t.engine.withLock(func() {
		if t.drained.Load() {
			if err = t.src.rewind(); err != nil {
				return
			}
			t.drained.Store(false)
			t.ctrl.Streamer = t.sequence()
			t.mixed = false
		}
		t.ctrl.Paused = false
		if !t.mixed {
			t.engine.mixer.Add(t.gain)
			t.mixed = true
		}
	})
	if err != nil {
		log.ErrorErr(log.CatAudio, "Failed to restart drained track", err, "track", t.name)
		return err
	}
	log.Debug(log.CatAudio, "Track playing", "track", t.name)
	return nil
}

// Pause stops the track where it is.
func (t *Track) Pause() {
	t.engine.withLock(func() { t.ctrl.Paused = true })
}

// Rewind moves the track back to its start without changing play state.
func (t *Track) Rewind() error {
	var err error
	t.engine.withLock(func() { err = t.src.rewind() })
	return err
}

// Paused reports whether the track is paused.
func (t *Track) Paused() bool {
	var p bool
	t.engine.withLock(func() { p = t.ctrl.Paused })
	return p
}
