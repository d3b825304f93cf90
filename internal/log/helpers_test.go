package log

import (
	"bytes"
	"sync"
	"time"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

// syncBuffer is a bytes.Buffer safe for the SafeGo goroutine to write into.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
