// Package schedule provides cancellable, keyed delayed messages for a
// bubbletea program.
//
// bubbletea ticks cannot be stopped once issued, so each scheduled fire
// carries a generation number. Only the newest generation of a live key is
// accepted; cancelling a key (or the whole scheduler) makes in-flight fires
// arrive stale and be dropped.
package schedule

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a scheduled delay elapses.
type FiredMsg struct {
	Key string
	Gen uint64
	At  time.Time
}

// Scheduler tracks the live generation of each key.
type Scheduler struct {
	mu     sync.Mutex
	gen    uint64
	live   map[string]uint64
	closed bool
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{live: make(map[string]uint64)}
}

// Schedule replaces any pending fire for key and returns the command that
// delivers FiredMsg after the delay. After CancelAll it returns nil.
func (s *Scheduler) Schedule(key string, after time.Duration) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.gen++
	gen := s.gen
	s.live[key] = gen
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return FiredMsg{Key: key, Gen: gen, At: t}
	})
}

// Accept reports whether msg is the current fire for its key, and if so
// consumes it so a duplicate delivery is rejected.
func (s *Scheduler) Accept(msg FiredMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.live[msg.Key]
	if !ok || gen != msg.Gen {
		return false
	}
	delete(s.live, msg.Key)
	return true
}

// Due returns the message the live fire for key will deliver, so a caller
// can deliver it early. ok is false when nothing is pending for key.
func (s *Scheduler) Due(key string) (msg FiredMsg, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.live[key]
	if !ok {
		return FiredMsg{}, false
	}
	return FiredMsg{Key: key, Gen: gen, At: time.Now()}, true
}

// Cancel drops the pending fire for key, if any.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, key)
}

// CancelAll drops every pending fire and refuses new ones. Used on teardown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = make(map[string]uint64)
	s.closed = true
}

// IsPending reports whether key has a live fire.
func (s *Scheduler) IsPending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[key]
	return ok
}

// Pending lists the live keys in sorted order.
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.live))
	for k := range s.live {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
