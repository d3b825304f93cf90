package sound

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/zjrosen/valentine/internal/audio"
	"github.com/zjrosen/valentine/internal/log"
)

// ErrUnknownSound is returned by Play for a name with no embedded effect.
var ErrUnknownSound = errors.New("unknown sound")

// Output mixes a one-shot stream. *engine.Engine satisfies it.
type Output interface {
	PlayOnce(s beep.Streamer, format beep.Format) error
}

// Effects holds every embedded effect decoded into memory so repeated plays
// never touch the filesystem.
type Effects struct {
	mu      sync.RWMutex
	out     Output
	enabled bool
	buffers map[string]*beep.Buffer
}

// New decodes the embedded effects. A nil out or enabled=false gives a player
// that accepts every Play and does nothing.
func New(out Output, enabled bool) (*Effects, error) {
	e := &Effects{
		out:     out,
		enabled: enabled && out != nil,
		buffers: make(map[string]*beep.Buffer),
	}

	entries, err := soundFiles.ReadDir("sounds")
	if err != nil {
		return nil, fmt.Errorf("reading embedded sounds: %w", err)
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		buf, err := decode(path.Join("sounds", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", name, err)
		}
		e.buffers[name] = buf
	}
	return e, nil
}

func decode(name string) (*beep.Buffer, error) {
	f, err := soundFiles.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}

// Names lists the available effects, sorted.
func (e *Effects) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.buffers))
	for n := range e.buffers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetEnabled toggles playback without re-decoding.
func (e *Effects) SetEnabled(enabled bool) {
	e.mu.Lock()
	e.enabled = enabled && e.out != nil
	e.mu.Unlock()
}

// Enabled reports whether Play reaches the output.
func (e *Effects) Enabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.enabled
}

// Play mixes the named effect. Silent output is not an error.
func (e *Effects) Play(name string) error {
	e.mu.RLock()
	buf, ok := e.buffers[name]
	enabled := e.enabled
	e.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	if !enabled {
		return nil
	}
	err := e.out.PlayOnce(buf.Streamer(0, buf.Len()), buf.Format())
	if errors.Is(err, audio.ErrSilent) {
		return nil
	}
	if err != nil {
		log.ErrorErr(log.CatAudio, "Sound effect failed", err, "sound", name)
		return err
	}
	return nil
}
