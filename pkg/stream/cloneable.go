package stream

import (
	"io"
	"sync"
)

// hub owns the source and the bytes buffered between the slowest and the
// fastest attached view.
type hub struct {
	mu   sync.Mutex
	cond *sync.Cond

	src  io.Reader
	opts *options

	buf  []byte
	base int64 // absolute offset of buf[0]

	views   map[*Cloneable]struct{}
	pending int // attached views that have not issued a Read yet

	pulled    bool
	pulling   bool
	err       error
	srcClosed bool
}

// Cloneable is one readable view over a shared source. It implements
// io.ReadCloser and is safe for concurrent use.
type Cloneable struct {
	hub     *hub
	off     int64
	started bool
	closed  bool
}

// New wraps r into a Cloneable. If r already is a Cloneable it is returned
// unchanged and opts are ignored.
func New(r io.Reader, opts ...Option) *Cloneable {
	if c, ok := r.(*Cloneable); ok {
		return c
	}

	o := newDefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	h := &hub{
		src:   r,
		opts:  o,
		views: make(map[*Cloneable]struct{}),
	}
	h.cond = sync.NewCond(&h.mu)

	return h.attach()
}

// Is reports whether v is a Cloneable view.
func Is(v any) bool {
	_, ok := v.(*Cloneable)
	return ok
}

// Clone attaches a new view that will observe the complete byte sequence.
// It fails with ErrStarted once data has been pulled from the source.
func (c *Cloneable) Clone() (*Cloneable, error) {
	h := c.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if h.pulled {
		return nil, ErrStarted
	}

	return h.attach(), nil
}

// Read blocks until every attached view has issued a Read, then returns the
// next bytes of the shared sequence for this view.
func (c *Cloneable) Read(p []byte) (int, error) {
	h := c.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}

	if !c.started {
		c.started = true
		h.pending--
		h.cond.Broadcast()
	}

	if len(p) == 0 {
		return 0, nil
	}

	for h.pending > 0 && !c.closed {
		h.cond.Wait()
	}

	for {
		if c.closed {
			return 0, ErrClosed
		}

		if end := h.base + int64(len(h.buf)); c.off < end {
			n := copy(p, h.buf[c.off-h.base:])
			c.off += int64(n)
			h.trim()
			h.cond.Broadcast()
			return n, nil
		}

		if h.err != nil {
			return 0, h.err
		}

		if h.pulling || h.full() {
			h.cond.Wait()
			continue
		}

		h.pull()
	}
}

// Close detaches the view. Once the last view is closed the source is closed
// too when it implements io.Closer.
func (c *Cloneable) Close() error {
	h := c.hub
	h.mu.Lock()

	if c.closed {
		h.mu.Unlock()
		return ErrClosed
	}

	c.closed = true
	if !c.started {
		h.pending--
	}
	delete(h.views, c)
	h.trim()
	h.cond.Broadcast()

	last := len(h.views) == 0 && !h.srcClosed
	if last {
		h.srcClosed = true
	}
	h.mu.Unlock()

	if last {
		if closer, ok := h.src.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// attach registers a new view positioned at the start of the buffer.
// The caller holds h.mu, or owns h exclusively.
func (h *hub) attach() *Cloneable {
	c := &Cloneable{
		hub: h,
		off: h.base,
	}
	h.views[c] = struct{}{}
	h.pending++
	return c
}

// pull reads one chunk from the source with h.mu released.
func (h *hub) pull() {
	h.pulling = true
	h.pulled = true
	chunk := make([]byte, h.opts.chunkSize)

	h.mu.Unlock()
	n, err := h.src.Read(chunk)
	h.mu.Lock()

	h.pulling = false
	if n > 0 {
		h.buf = append(h.buf, chunk[:n]...)
	}
	if err != nil {
		h.err = err
	}
	h.cond.Broadcast()
}

// trim drops the buffered bytes every attached view has already read.
func (h *hub) trim() {
	end := h.base + int64(len(h.buf))
	low := end
	for v := range h.views {
		if v.off < low {
			low = v.off
		}
	}

	if drop := low - h.base; drop > 0 {
		h.buf = h.buf[drop:]
		h.base = low
	}
	if len(h.buf) == 0 {
		h.buf = nil
	}
}

func (h *hub) full() bool {
	return h.opts.highWaterMark > 0 && len(h.buf) >= h.opts.highWaterMark
}

var _ io.ReadCloser = (*Cloneable)(nil)
