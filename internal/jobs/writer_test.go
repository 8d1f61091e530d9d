package jobs_test

import (
	"io"
	"sync"
)

// lockedWriter serialises writes from the cron goroutine and reads from the test.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
