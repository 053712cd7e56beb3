package stream

import "errors"

var (
	// ErrStarted is returned by Clone once data has been pulled from the source.
	ErrStarted = errors.New("stream: cannot clone a stream that already started flowing")

	// ErrClosed is returned when reading, cloning or closing a closed view.
	ErrClosed = errors.New("stream: view already closed")
)
