package supervise

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"
)

// capture is a pipe-backed bounded sink. A goroutine drains the read end
// into an in-memory buffer, keeping at most max bytes and discarding the
// rest so the writer never blocks.
type capture struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	w    *os.File
	done chan struct{}
}

func newCapture(max int64) (*capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	c := &capture{w: w, done: make(chan struct{})}
	go func() {
		io.CopyN(lockedWriter{c}, r, max)
		io.Copy(io.Discard, r)
		r.Close()
		close(c.done)
	}()
	return c, nil
}

type lockedWriter struct {
	c *capture
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	lw.c.mu.Lock()
	defer lw.c.mu.Unlock()
	return lw.c.buf.Write(p)
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// close shuts the write end and waits briefly for the drain goroutine. The
// wait is bounded: a learner goroutine abandoned after a timeout may still
// hold a duplicate of the descriptor.
func (c *capture) close() {
	c.w.Close()
	select {
	case <-c.done:
	case <-time.After(200 * time.Millisecond):
	}
}

// disabledStdin returns a file whose reads fail immediately. Both ends of
// the pipe are closed before it is installed, so any read attempt surfaces
// as a "file already closed" error instead of hanging.
func disabledStdin() (*os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	w.Close()
	r.Close()
	return r, nil
}
