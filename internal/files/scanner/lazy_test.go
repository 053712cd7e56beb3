package scanner

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingCloser struct {
	io.Reader
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}

func TestLazyReader_OpensOnFirstRead(t *testing.T) {
	opened := 0
	tc := &trackingCloser{Reader: strings.NewReader("data")}
	l := &lazyReader{open: func() (io.ReadCloser, error) {
		opened++
		return tc, nil
	}}

	assert.Equal(t, 0, opened)

	data, err := io.ReadAll(l)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, tc.closed, "closed at EOF")

	require.NoError(t, l.Close())
	assert.Equal(t, 1, tc.closed)

	n, err := l.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestLazyReader_CloseBeforeRead(t *testing.T) {
	l := &lazyReader{open: func() (io.ReadCloser, error) {
		t.Fatal("should not open")
		return nil, nil
	}}
	require.NoError(t, l.Close())
}

func TestLazyReader_OpenError(t *testing.T) {
	boom := errors.New("boom")
	l := &lazyReader{open: func() (io.ReadCloser, error) {
		return nil, boom
	}}

	_, err := l.Read(make([]byte, 1))
	assert.ErrorIs(t, err, boom)
	_, err = l.Read(make([]byte, 1))
	assert.ErrorIs(t, err, boom)
}
