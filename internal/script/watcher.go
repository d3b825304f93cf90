package script

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/valentine/internal/log"
)

// Reload is delivered by a Watcher after the script file changes.
// Err is set when the new file does not parse; the previous script stays in use.
type Reload struct {
	Script *Script
	Err    error
}

// Watcher reloads a script file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	out      chan Reload
}

// NewWatcher watches the directory containing path so that editors which
// replace the file (write to temp, rename) are still observed.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolving script path: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		out:      make(chan Reload, 1),
	}, nil
}

// Reloads returns the channel reloads are delivered on. It is closed when
// Run returns.
func (w *Watcher) Reloads() <-chan Reload {
	return w.out
}

// Run processes file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.out)
	defer func() { _ = w.fsw.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatConfig, "Script watcher error", "error", err)

		case <-fire:
			fire = nil
			s, err := Load(w.path)
			if err != nil {
				log.Warn(log.CatConfig, "Script reload failed", "path", w.path, "error", err)
			} else {
				log.Info(log.CatConfig, "Script reloaded", "path", w.path)
			}
			select {
			case w.out <- Reload{Script: s, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
