package runtime

import (
	"io"
	"sync"
)

// Reader that reports on a channel once its input is exhausted.
//
// Used to tell when an exec process has consumed all of its stdin, so the
// container's end of the stdin FIFO can be closed behind it. The channel
// closes exactly once, on the first [io.EOF] from the underlying reader;
// other read errors leave it open.
type eofReader struct {
	io.Reader
	once sync.Once
	done chan struct{}
}

// Wraps r so that EOF closes the done channel.
func watchEOF(r io.Reader) *eofReader {
	return &eofReader{Reader: r, done: make(chan struct{})}
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.Reader.Read(p)
	if err == io.EOF {
		e.once.Do(func() { close(e.done) })
	}
	return n, err
}
