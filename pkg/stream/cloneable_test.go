package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readResult struct {
	data []byte
	err  error
}

func readAllAsync(r io.Reader) <-chan readResult {
	ch := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r)
		ch <- readResult{data: data, err: err}
	}()
	return ch
}

type closeTracker struct {
	io.Reader
	closed atomic.Int32
}

func (c *closeTracker) Close() error {
	c.closed.Add(1)
	return nil
}

func TestNew_SingleViewReadsEverything(t *testing.T) {
	s := New(strings.NewReader("wadup"))

	data, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "wadup", string(data))
}

func TestNew_DoesNotRewrapCloneable(t *testing.T) {
	s := New(strings.NewReader("x"))
	assert.Same(t, s, New(s))
	assert.True(t, Is(s))
	assert.False(t, Is(strings.NewReader("x")))
	assert.False(t, Is(nil))
}

func TestCloneable_ViewsReceiveIdenticalBytes(t *testing.T) {
	payload := make([]byte, 1<<20)
	rand.New(rand.NewSource(42)).Read(payload)

	original := New(bytes.NewReader(payload), WithChunkSize(4096), WithHighWaterMark(16*1024))
	clones := make([]*Cloneable, 3)
	for i := range clones {
		c, err := original.Clone()
		require.NoError(t, err)
		clones[i] = c
	}

	results := []<-chan readResult{readAllAsync(original)}
	for _, c := range clones {
		results = append(results, readAllAsync(c))
	}

	for i, ch := range results {
		res := <-ch
		require.NoError(t, res.err, "view %d", i)
		assert.True(t, bytes.Equal(payload, res.data), "view %d received different bytes", i)
	}
}

func TestCloneable_DoesNotFlowUntilEveryViewReads(t *testing.T) {
	original := New(strings.NewReader("wadup"))
	clone, err := original.Clone()
	require.NoError(t, err)

	var received atomic.Int64
	done := make(chan readResult, 1)
	go func() {
		var buf bytes.Buffer
		chunk := make([]byte, 2)
		for {
			n, err := clone.Read(chunk)
			received.Add(int64(n))
			buf.Write(chunk[:n])
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				done <- readResult{data: buf.Bytes(), err: err}
				return
			}
		}
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, received.Load(), "clone produced data before the original started reading")

	data, err := io.ReadAll(original)
	require.NoError(t, err)
	assert.Equal(t, "wadup", string(data))

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "wadup", string(res.data))
}

func TestCloneable_PipeSource(t *testing.T) {
	pr, pw := io.Pipe()
	original := New(pr)
	clone, err := original.Clone()
	require.NoError(t, err)

	cloneResult := readAllAsync(clone)
	originalResult := readAllAsync(original)

	go func() {
		pw.Write([]byte("wa"))
		pw.Write([]byte("dup"))
		pw.Close()
	}()

	for _, ch := range []<-chan readResult{originalResult, cloneResult} {
		res := <-ch
		require.NoError(t, res.err)
		assert.Equal(t, "wadup", string(res.data))
	}
}

func TestCloneable_SourceErrorReachesEveryView(t *testing.T) {
	errBoom := errors.New("boom")
	src := io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(errBoom))

	original := New(src)
	clone, err := original.Clone()
	require.NoError(t, err)

	a := readAllAsync(original)
	b := readAllAsync(clone)

	for _, ch := range []<-chan readResult{a, b} {
		res := <-ch
		assert.ErrorIs(t, res.err, errBoom)
		assert.Equal(t, "abc", string(res.data))
	}
}

func TestCloneable_CloneAfterFlowFails(t *testing.T) {
	s := New(strings.NewReader("wadup"))

	buf := make([]byte, 2)
	_, err := s.Read(buf)
	require.NoError(t, err)

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrStarted)
}

func TestCloneable_CloseDetachesView(t *testing.T) {
	original := New(strings.NewReader("wadup"))
	clone, err := original.Clone()
	require.NoError(t, err)

	require.NoError(t, clone.Close())

	data, err := io.ReadAll(original)
	require.NoError(t, err)
	assert.Equal(t, "wadup", string(data))
}

func TestCloneable_CloseClosesSourceOnLastView(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("wadup")}
	original := New(src)
	clone, err := original.Clone()
	require.NoError(t, err)

	require.NoError(t, original.Close())
	assert.Equal(t, int32(0), src.closed.Load())

	require.NoError(t, clone.Close())
	assert.Equal(t, int32(1), src.closed.Load())

	assert.ErrorIs(t, clone.Close(), ErrClosed)
	assert.Equal(t, int32(1), src.closed.Load())
}

func TestCloneable_UseAfterClose(t *testing.T) {
	s := New(strings.NewReader("wadup"))
	require.NoError(t, s.Close())

	_, err := s.Read(make([]byte, 4))
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloneable_BackPressureHoldsFastView(t *testing.T) {
	const highWater = 8
	const chunk = 4
	payload := []byte(strings.Repeat("0123456789abcdef", 8))

	fast := New(bytes.NewReader(payload), WithHighWaterMark(highWater), WithChunkSize(chunk))
	slow, err := fast.Clone()
	require.NoError(t, err)

	fastResult := readAllAsync(fast)

	first := make([]byte, 1)
	n, err := slow.Read(first)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	time.Sleep(50 * time.Millisecond)

	select {
	case <-fastResult:
		t.Fatal("fast view finished while the slow view was still behind")
	default:
	}

	fast.hub.mu.Lock()
	buffered := len(fast.hub.buf)
	fast.hub.mu.Unlock()
	assert.Less(t, buffered, highWater+chunk)

	rest, err := io.ReadAll(slow)
	require.NoError(t, err)
	assert.Equal(t, payload, append(first, rest...))

	res := <-fastResult
	require.NoError(t, res.err)
	assert.Equal(t, payload, res.data)
}

func TestCloneable_ZeroLengthReadJoinsWithoutBlocking(t *testing.T) {
	original := New(strings.NewReader("wadup"))
	clone, err := original.Clone()
	require.NoError(t, err)

	n, err := clone.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	var wg sync.WaitGroup
	wg.Add(1)
	var cloneData []byte
	go func() {
		defer wg.Done()
		cloneData, _ = io.ReadAll(clone)
	}()

	data, err := io.ReadAll(original)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, "wadup", string(data))
	assert.Equal(t, "wadup", string(cloneData))
}

func BenchmarkCloneable_TwoViews(b *testing.B) {
	payload := bytes.Repeat([]byte("x"), 256*1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		original := New(bytes.NewReader(payload))
		clone, err := original.Clone()
		if err != nil {
			b.Fatal(err)
		}
		done := readAllAsync(clone)
		if _, err := io.Copy(io.Discard, original); err != nil {
			b.Fatal(err)
		}
		<-done
	}
}
