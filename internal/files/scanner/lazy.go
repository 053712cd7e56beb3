package scanner

import (
	"io"
	"sync"
)

// lazyReader defers opening a file until the first Read and closes it at EOF,
// so a scan in stream mode holds no descriptors until contents are consumed.
type lazyReader struct {
	open func() (io.ReadCloser, error)

	mu     sync.Mutex
	rc     io.ReadCloser
	err    error
	closed bool
}

func (l *lazyReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return 0, l.err
	}
	if l.closed {
		return 0, io.EOF
	}
	if l.rc == nil {
		rc, err := l.open()
		if err != nil {
			l.err = err
			return 0, err
		}
		l.rc = rc
	}

	n, err := l.rc.Read(p)
	if err == io.EOF {
		l.closeLocked()
	}
	return n, err
}

func (l *lazyReader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeLocked()
}

func (l *lazyReader) closeLocked() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if l.rc == nil {
		return nil
	}
	return l.rc.Close()
}
