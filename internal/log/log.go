// Package log provides category-tagged structured logging.
//
// The terminal belongs to the UI while the greeting runs, so log output goes
// to a file opened with Init. Until Init is called every call is discarded.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
)

// Category groups log lines by subsystem.
type Category string

const (
	CatUI     Category = "ui"
	CatSeq    Category = "sequence"
	CatAudio  Category = "audio"
	CatDB     Category = "db"
	CatConfig Category = "config"
	CatTrace  Category = "trace"
)

var (
	mu      sync.RWMutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	closer  io.Closer
	enabled bool
)

// Init opens path for appending and routes all log output to it.
// Calling Init again replaces the previous destination.
func Init(path string, level slog.Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from config
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f, level)

	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// SetOutput routes log output to w. Used by Init and by tests.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	enabled = true
}

// Close flushes and closes the log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled = false
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Enabled reports whether log output is going anywhere.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func with(cat Category, kv []any) []any {
	return append([]any{"cat", string(cat)}, kv...)
}

// Debug logs at debug level.
func Debug(cat Category, msg string, kv ...any) {
	current().Debug(msg, with(cat, kv)...)
}

// Info logs at info level.
func Info(cat Category, msg string, kv ...any) {
	current().Info(msg, with(cat, kv)...)
}

// Warn logs at warn level.
func Warn(cat Category, msg string, kv ...any) {
	current().Warn(msg, with(cat, kv)...)
}

// Error logs at error level.
func Error(cat Category, msg string, kv ...any) {
	current().Error(msg, with(cat, kv)...)
}

// ErrorErr logs err at error level under the "error" key.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	current().Error(msg, with(cat, append([]any{"error", err}, kv...))...)
}

// SafeGo runs fn in a goroutine and logs (rather than crashes on) a panic.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				Error(CatUI, "Recovered panic in goroutine", "goroutine", name, "panic", r, "stack", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
