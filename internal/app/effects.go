package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/log"
	"github.com/zjrosen/valentine/internal/sequence"
)

// execute carries out effects in order. Audio runs immediately; timers and
// fades become scheduler commands.
func (m *Model) execute(effects []sequence.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case sequence.Schedule:
			cmds = append(cmds, m.sched.Schedule(string(e.Key), e.After))
		case sequence.SetVolume:
			m.players[e.Track].SetVolume(e.Volume)
		case sequence.Play:
			m.audioErr(e.Track, "play", m.players[e.Track].Play())
		case sequence.Pause:
			m.players[e.Track].Pause()
		case sequence.Fade:
			cmds = append(cmds, m.startRamp(e.Track, e.Ramp))
		case sequence.Chime:
			m.chime(e.Sound)
		}
	}
	return cmds
}

// audioErr logs a playback failure. Playback is best-effort, so nothing is
// surfaced to the viewer; a missing device is not even worth a warning.
func (m *Model) audioErr(t audio.Track, op string, err error) {
	if err == nil || errors.Is(err, audio.ErrSilent) {
		return
	}
	log.Warn(log.CatAudio, "Audio "+op+" failed", "track", t, "error", err)
	m.phaseSpan.AddEvent("audio.failure", trace.WithAttributes(
		attribute.String("track", string(t)),
		attribute.String("op", op),
		attribute.String("error", err.Error())))
}

func (m *Model) chime(name string) {
	if m.sfx == nil {
		return
	}
	if err := m.sfx.Play(name); err != nil {
		log.Warn(log.CatAudio, "Sound effect failed", "sound", name, "error", err)
	}
}

// fade is a ramp in progress. It tracks its own level and a step budget so
// it ends even if the player does not report volume faithfully.
type fade struct {
	ramp  audio.Ramp
	level float64
	left  int
}

// startRamp replaces any ramp running on t. The first step lands one
// interval from now.
func (m *Model) startRamp(t audio.Track, r audio.Ramp) tea.Cmd {
	r = r.Normalize()
	m.players[t].SetVolume(r.From)
	steps := r.Steps()
	if steps == 0 {
		delete(m.ramps, t)
		m.sched.Cancel(rampKeyPrefix + string(t))
		return nil
	}
	m.ramps[t] = fade{ramp: r, level: r.From, left: steps}
	return m.sched.Schedule(rampKeyPrefix+string(t), r.Interval)
}

func (m *Model) rampTick(t audio.Track) tea.Cmd {
	f, ok := m.ramps[t]
	if !ok {
		return nil
	}
	v, done := f.ramp.Next(f.level)
	f.left--
	if f.left <= 0 {
		v, done = f.ramp.To, true
	}
	m.players[t].SetVolume(v)
	if done {
		delete(m.ramps, t)
		log.Debug(log.CatAudio, "Fade complete", "track", t, "volume", v)
		return nil
	}
	f.level = v
	m.ramps[t] = f
	return m.sched.Schedule(rampKeyPrefix+string(t), f.ramp.Interval)
}
