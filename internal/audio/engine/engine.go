// Package engine plays the greeting's music through the system speaker using
// gopxl/beep.
//
// Every track is a beep.Ctrl (play/pause) inside an effects.Gain (linear
// volume) mixed onto the speaker. If the speaker cannot be opened the engine
// runs silent: tracks still accept volume changes but Play reports
// audio.ErrSilent.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/log"
)

// DefaultSampleRate is used when the config does not name one.
const DefaultSampleRate = beep.SampleRate(44100)

// TrackConfig selects the source of one track.
type TrackConfig struct {
	// File is an .mp3 or .wav file. Empty selects the built-in generator.
	File string
	Loop bool
}

// Config configures the engine.
type Config struct {
	Enabled    bool
	SampleRate int
	Buffer     time.Duration
	Idle       TrackConfig
	Bloom      TrackConfig
}

// Engine owns the speaker and the two music tracks.
type Engine struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	silent     bool
	started    bool
	tracks     map[audio.Track]*Track
}

// New builds an engine and its tracks. Track sources that fail to open fall
// back to the built-in generator; the speaker is not touched until Start.
func New(cfg Config) *Engine {
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	e := &Engine{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		silent:     !cfg.Enabled,
		tracks:     make(map[audio.Track]*Track, 2),
	}
	e.tracks[audio.TrackIdle] = e.newTrack(audio.TrackIdle, cfg.Idle)
	e.tracks[audio.TrackBloom] = e.newTrack(audio.TrackBloom, cfg.Bloom)
	return e
}

func (e *Engine) newTrack(name audio.Track, tc TrackConfig) *Track {
	src, err := e.openSource(name, tc)
	if err != nil {
		log.Warn(log.CatAudio, "Falling back to generated track", "track", name, "file", tc.File, "error", err)
		src = generatedSource(name, e.sampleRate, tc.Loop)
	}
	return newTrack(e, name, src)
}

func (e *Engine) openSource(name audio.Track, tc TrackConfig) (*source, error) {
	if tc.File == "" {
		return generatedSource(name, e.sampleRate, tc.Loop), nil
	}
	return openFile(tc.File, e.sampleRate, tc.Loop)
}

// Start opens the speaker. A failure is not an error for the caller: the
// engine switches to silent mode and Start returns nil.
func (e *Engine) Start(buffer time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("audio engine already started")
	}
	e.started = true
	if e.silent {
		log.Info(log.CatAudio, "Audio disabled, running silent")
		return nil
	}
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(buffer)); err != nil {
		log.Warn(log.CatAudio, "Speaker unavailable, running silent", "error", err)
		e.silent = true
		return nil
	}
	speaker.Play(e.mixer)
	log.Info(log.CatAudio, "Audio engine started", "sampleRate", int(e.sampleRate))
	return nil
}

// Silent reports whether the engine produces no sound.
func (e *Engine) Silent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silent
}

// SampleRate is the rate everything is mixed at.
func (e *Engine) SampleRate() beep.SampleRate {
	return e.sampleRate
}

// Player returns the playback handle for t.
func (e *Engine) Player(t audio.Track) audio.Player {
	return e.tracks[t]
}

// PlayOnce mixes a one-shot streamer recorded at format's rate.
func (e *Engine) PlayOnce(s beep.Streamer, format beep.Format) error {
	if e.Silent() {
		return audio.ErrSilent
	}
	if format.SampleRate != e.sampleRate {
		s = beep.Resample(4, format.SampleRate, e.sampleRate, s)
	}
	e.withLock(func() { e.mixer.Add(s) })
	return nil
}

// Close pauses every track, clears the mixer and closes decoded files.
func (e *Engine) Close() {
	for _, t := range e.tracks {
		t.Pause()
	}
	if !e.Silent() {
		e.withLock(func() { e.mixer.Clear() })
		speaker.Clear()
	}
	for name, t := range e.tracks {
		if t.src.closer == nil {
			continue
		}
		if err := t.src.closer.Close(); err != nil {
			log.Warn(log.CatAudio, "Failed to close track source", "track", name, "error", err)
		}
	}
}

// withLock runs fn under the speaker lock so mixer state is not changed
// mid-buffer. In silent mode the speaker is never initialised and fn runs
// directly.
func (e *Engine) withLock(fn func()) {
	if e.Silent() {
		fn()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}
