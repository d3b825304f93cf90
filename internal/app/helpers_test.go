package app

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/sequence"
)

// fakePlayer records what was asked of it.
type fakePlayer struct {
	mu      sync.Mutex
	volume  float64
	playing bool
	plays   int
	pauses  int
	stuck   bool // ignore SetVolume
	playErr error
}

func (p *fakePlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.stuck {
		p.volume = audio.ClampVolume(v)
	}
}

func (p *fakePlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *fakePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
	if p.playErr != nil {
		return p.playErr
	}
	p.playing = true
	return nil
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses++
	p.playing = false
}

func (p *fakePlayer) Rewind() error { return nil }

func (p *fakePlayer) isPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

type fakeSFX struct {
	mu     sync.Mutex
	played []string
}

func (f *fakeSFX) Play(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, name)
	return nil
}

func (f *fakeSFX) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.played...)
}

type rig struct {
	idle, bloom *fakePlayer
	sfx         *fakeSFX
}

func newRig(t *testing.T, v sequence.Variant, mutate ...func(*Options)) (Model, *rig) {
	t.Helper()
	r := &rig{idle: &fakePlayer{}, bloom: &fakePlayer{}, sfx: &fakeSFX{}}
	opts := Options{
		Variant: v,
		Players: map[audio.Track]audio.Player{
			audio.TrackIdle:  r.idle,
			audio.TrackBloom: r.bloom,
		},
		Effects: r.sfx,
		Seed:    1,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	return New(opts).SetSize(80, 30), r
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// fire delivers the pending fire for key without waiting for it.
func fire(t *testing.T, m Model, key string) Model {
	t.Helper()
	msg, ok := m.sched.Due(key)
	require.True(t, ok, "nothing pending for %q (pending: %v)", key, m.Pending())
	m, _ = update(t, m, msg)
	return m
}

func pluckAll(t *testing.T, m Model) Model {
	t.Helper()
	for range m.ctrl.Script.Petals.Count {
		m = press(t, m, "p")
	}
	return m
}
