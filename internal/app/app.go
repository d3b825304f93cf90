// Package app is the bubbletea program that plays the greeting. It feeds
// input and timer events to the sequence controller and carries out the
// effects it returns.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/log"
	"github.com/zjrosen/valentine/internal/schedule"
	"github.com/zjrosen/valentine/internal/script"
	"github.com/zjrosen/valentine/internal/sequence"
	"github.com/zjrosen/valentine/internal/ui/scene"
)

// Scheduler keys besides the sequence timers.
const (
	keyFrame      = "frame"
	keyReveal     = "reveal"
	rampKeyPrefix = "ramp:"
)

const (
	// FrameInterval paces the star and garden animation.
	FrameInterval = 150 * time.Millisecond
	// DefaultRevealInterval is the typewriter speed, one grapheme per tick.
	DefaultRevealInterval = 30 * time.Millisecond
)

// SoundPlayer plays a named one-shot effect.
type SoundPlayer interface {
	Play(name string) error
}

// Options configures a Model. Zero values are usable: the default script,
// default timings, silent players and no tracing.
type Options struct {
	Variant sequence.Variant
	Script  *script.Script
	Timings sequence.Timings
	Players map[audio.Track]audio.Player
	Effects SoundPlayer
	Tracer  trace.Tracer
	Context context.Context
	Reloads <-chan script.Reload
	Seed    uint64

	// RevealInterval is the typewriter tick; zero shows lines at once.
	RevealInterval time.Duration
	// FrameInterval overrides the animation tick.
	FrameInterval time.Duration
	// AllowSkip binds tab to fire pending transitions immediately.
	AllowSkip bool
}

// Summary describes a finished run, for the viewing history.
type Summary struct {
	Variant   sequence.Variant
	StartedAt time.Time
	EndedAt   time.Time
	Furthest  sequence.Phase
	Petals    int
	Clicks    int
	Completed bool
}

type reloadMsg script.Reload

// Model is the greeting's bubbletea model.
type Model struct {
	ctrl  sequence.Controller
	state sequence.State
	sched *schedule.Scheduler

	players map[audio.Track]audio.Player
	ramps   map[audio.Track]fade
	sfx     SoundPlayer

	zones *zone.Manager
	scene *scene.Renderer
	keys  KeyMap
	help  help.Model

	ctx       context.Context
	runSpan   trace.Span
	phaseSpan trace.Span
	tracer    trace.Tracer

	reloads        <-chan script.Reload
	revealInterval time.Duration
	frameInterval  time.Duration

	width, height int
	frame         int
	gardenFrame   int
	cursor        int
	reveal        int
	notice        string

	startedAt time.Time
	endedAt   time.Time
	quitting  bool
}

// New creates the model. It starts the run span; the phase spans follow the
// sequence from there.
func New(opts Options) Model {
	timings := opts.Timings
	if timings == (sequence.Timings{}) {
		timings = sequence.DefaultTimings()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("valentine")
	}

	players := make(map[audio.Track]audio.Player, 2)
	for _, t := range audio.Tracks() {
		if p, ok := opts.Players[t]; ok && p != nil {
			players[t] = p
		} else {
			players[t] = &audio.Nop{}
		}
	}

	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = FrameInterval
	}

	st := sequence.New(opts.Variant)
	ctx, runSpan := tracer.Start(ctx, "valentine.run",
		trace.WithAttributes(attribute.String("variant", string(st.Variant))))

	m := Model{
		ctrl:           sequence.NewController(opts.Script, timings),
		state:          st,
		sched:          schedule.New(),
		players:        players,
		ramps:          make(map[audio.Track]fade),
		sfx:            opts.Effects,
		zones:          zone.New(),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		ctx:            ctx,
		runSpan:        runSpan,
		tracer:         tracer,
		reloads:        opts.Reloads,
		revealInterval: opts.RevealInterval,
		frameInterval:  frameInterval,
		reveal:         -1,
		startedAt:      time.Now(),
	}
	m.scene = scene.New(opts.Seed, m.zones)
	m.keys.Skip.SetEnabled(opts.AllowSkip)
	m.startPhaseSpan(st.Phase)
	if m.revealInterval > 0 {
		m.reveal = 0
	}
	return m
}

// Init starts the typewriter and the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.revealCmd(), m.waitReload())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// Petal hits win over the global advance.
		ev := sequence.Advance()
		if i, ok := m.petalAt(msg); ok {
			ev = sequence.Petal(i)
		}
		cmd := m.step(ev)
		return m, cmd

	case schedule.FiredMsg:
		if !m.sched.Accept(msg) {
			log.Debug(log.CatSeq, "Dropped stale timer", "key", msg.Key, "gen", msg.Gen)
			return m, nil
		}
		cmd := m.fired(msg.Key)
		return m, cmd

	case reloadMsg:
		cmd := m.applyReload(script.Reload(msg))
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Advance):
		cmd := m.step(sequence.Advance())
		return *m, cmd
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Pluck):
		cmd := m.step(sequence.Petal(m.cursor))
		return *m, cmd
	case key.Matches(msg, m.keys.Skip):
		cmd := m.skip()
		return *m, cmd
	}
	return *m, nil
}

// skip delivers every pending sequence timer now, in key order.
func (m *Model) skip() tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range m.sched.Pending() {
		if k == keyFrame || k == keyReveal || strings.HasPrefix(k, rampKeyPrefix) {
			continue
		}
		if msg, ok := m.sched.Due(k); ok && m.sched.Accept(msg) {
			log.Debug(log.CatSeq, "Skipped wait", "key", k)
			cmds = append(cmds, m.fired(k))
		}
	}
	return tea.Batch(cmds...)
}

// moveCursor steps to the next petal still on the flower in direction d.
func (m *Model) moveCursor(d int) {
	n := m.ctrl.Script.Petals.Count
	if n <= 0 || m.state.Removed.Len() >= n {
		return
	}
	c := m.cursor
	for range n {
		c = ((c+d)%n + n) % n
		if !m.state.Removed.Has(c) {
			m.cursor = c
			return
		}
	}
}

func (m *Model) petalAt(msg tea.MouseMsg) (int, bool) {
	if m.state.Phase != sequence.PhaseGame {
		return 0, false
	}
	for i := range m.ctrl.Script.Petals.Count {
		if m.state.Removed.Has(i) {
			continue
		}
		if m.zones.Get(scene.PetalZoneID(i)).InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

// step runs one event through the controller and executes the effects.
func (m *Model) step(ev sequence.Event) tea.Cmd {
	prev := m.state
	next, effects := m.ctrl.Step(prev, ev)
	m.state = next

	if log.Enabled() {
		names := make([]string, len(effects))
		for i, e := range effects {
			names[i] = e.String()
		}
		log.Debug(log.CatSeq, "Step",
			"event", eventName(ev),
			"from", prev.Phase,
			"to", next.Phase,
			"effects", strings.Join(names, ", "))
	}

	if ev.Kind == sequence.EventPetal && next.Removed.Len() > prev.Removed.Len() {
		m.phaseSpan.AddEvent("petal.pluck", trace.WithAttributes(
			attribute.Int("petal", ev.Petal),
			attribute.Int("removed", next.Removed.Len())))
		m.moveCursor(1)
	}

	cmds := m.execute(effects)
	if next.Phase != prev.Phase {
		m.enterPhase(next.Phase)
		cmds = append(cmds, m.frameCmd())
	}
	if lineChanged(prev, next) && m.revealInterval > 0 {
		m.reveal = 0
		cmds = append(cmds, m.revealCmd())
	}
	return tea.Batch(cmds...)
}

func lineChanged(prev, next sequence.State) bool {
	return prev.Phase != next.Phase ||
		prev.ThoughtStep != next.ThoughtStep ||
		prev.BridgeStep != next.BridgeStep
}

func eventName(ev sequence.Event) string {
	switch ev.Kind {
	case sequence.EventPetal:
		return "petal"
	case sequence.EventTimer:
		return "timer:" + string(ev.Timer)
	default:
		return "advance"
	}
}

func (m *Model) fired(k string) tea.Cmd {
	switch {
	case k == keyFrame:
		m.frame++
		if m.state.Phase == sequence.PhaseAsk {
			m.gardenFrame++
		}
		return m.frameCmd()
	case k == keyReveal:
		m.reveal++
		return m.revealCmd()
	case strings.HasPrefix(k, rampKeyPrefix):
		return m.rampTick(audio.Track(strings.TrimPrefix(k, rampKeyPrefix)))
	}
	return m.step(sequence.Timer(sequence.TimerKey(k)))
}

// frameCmd keeps the animation ticking while the sky is shown.
func (m *Model) frameCmd() tea.Cmd {
	if !scene.ShowsStars(m.state.Phase) || m.sched.IsPending(keyFrame) {
		return nil
	}
	return m.sched.Schedule(keyFrame, m.frameInterval)
}

// revealCmd advances the typewriter until the newest line is complete.
func (m *Model) revealCmd() tea.Cmd {
	if m.revealInterval <= 0 || m.reveal < 0 {
		return nil
	}
	if m.reveal >= scene.RevealLength(m.state, m.ctrl.Script) {
		return nil
	}
	return m.sched.Schedule(keyReveal, m.revealInterval)
}

func (m *Model) enterPhase(p sequence.Phase) {
	m.keys = m.keys.forPhase(p)
	if p == sequence.PhaseGame {
		m.cursor = 0
	}
	if p == sequence.PhaseAsk {
		m.gardenFrame = 0
	}
	m.endPhaseSpan()
	m.startPhaseSpan(p)
	log.Info(log.CatSeq, "Entered phase", "phase", p, "variant", m.state.Variant)
}

func (m *Model) startPhaseSpan(p sequence.Phase) {
	_, m.phaseSpan = m.tracer.Start(m.ctx, "phase."+string(p),
		trace.WithAttributes(attribute.String("phase", string(p))))
}

func (m *Model) endPhaseSpan() {
	if m.phaseSpan != nil {
		m.phaseSpan.End()
	}
}

func (m *Model) applyReload(r script.Reload) tea.Cmd {
	if r.Err != nil {
		m.notice = "script reload failed: " + r.Err.Error()
		log.ErrorErr(log.CatConfig, "Script reload failed", r.Err)
		return m.waitReload()
	}
	m.notice = ""
	m.ctrl.Script = r.Script
	st, effects := m.ctrl.Clamp(m.state)
	m.state = st
	if n := r.Script.Petals.Count; m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	log.Info(log.CatConfig, "Script reloaded", "recipient", r.Script.Recipient)
	cmds := m.execute(effects)
	return tea.Batch(append(cmds, m.waitReload())...)
}

func (m Model) waitReload() tea.Cmd {
	ch := m.reloads
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// quit cancels every pending timer, stops the music and ends the spans.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.sched.CancelAll()
	for _, t := range audio.Tracks() {
		m.players[t].Pause()
	}
	m.ramps = make(map[audio.Track]fade)
	m.quitting = true
	m.endedAt = time.Now()

	m.endPhaseSpan()
	m.runSpan.SetAttributes(
		attribute.String("furthest_phase", string(m.state.Phase)),
		attribute.Int("petals", m.state.Removed.Len()),
		attribute.Int("clicks", m.state.Clicks),
		attribute.Bool("completed", m.completed()))
	m.runSpan.End()
	m.zones.Close()

	log.Info(log.CatUI, "Quit", "phase", m.state.Phase, "clicks", m.state.Clicks)
	return *m, tea.Quit
}

func (m Model) completed() bool {
	return m.state.Phase == sequence.PhaseAsk && m.state.MessageVisible
}

// View renders the greeting.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}
	return m.zones.Scan(m.scene.Render(scene.Input{
		State:       m.state,
		Script:      m.ctrl.Script,
		Width:       m.width,
		Height:      m.height,
		Frame:       m.frame,
		GardenFrame: m.gardenFrame,
		Cursor:      m.cursor,
		Reveal:      m.reveal,
		Notice:      m.notice,
		Help:        m.help.View(m.keys),
	}))
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// State returns the current sequence state.
func (m Model) State() sequence.State { return m.state }

// Pending lists the live scheduler keys.
func (m Model) Pending() []string { return m.sched.Pending() }

// Summary describes the run so far.
func (m Model) Summary() Summary {
	ended := m.endedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	return Summary{
		Variant:   m.state.Variant,
		StartedAt: m.startedAt,
		EndedAt:   ended,
		Furthest:  m.state.Phase,
		Petals:    m.state.Removed.Len(),
		Clicks:    m.state.Clicks,
		Completed: m.completed(),
	}
}
