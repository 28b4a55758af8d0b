package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write collects the given bytes into an internal buffer, then flushes any
// completed lines through Logf. This is all done while holding a lock, so
// that writing is safe from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flush(false)
	return len(p), nil
}

// Sync flushes any remainder from the internal buffer as a final partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flush(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flush(all bool) {
	for {
		b := lw.buf.Bytes()
		if len(b) == 0 {
			return
		}
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			if all {
				lw.Logf("%s", lw.buf.Next(len(b)))
			}
			return
		}
		lw.Logf("%s", lw.buf.Next(i))
		lw.buf.Next(1)
	}
}
