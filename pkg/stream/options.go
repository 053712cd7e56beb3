package stream

// DefaultHighWaterMark bounds how far the fastest view may run ahead of the
// slowest one, in bytes.
const DefaultHighWaterMark = 64 * 1024

// DefaultChunkSize is the size of each read issued against the source.
const DefaultChunkSize = 32 * 1024

type options struct {
	highWaterMark int
	chunkSize     int
}

// Option configures a Cloneable created with New.
type Option func(*options)

// WithHighWaterMark sets the maximum number of buffered bytes before the
// fastest view waits for the slowest. Zero or less disables the limit.
func WithHighWaterMark(n int) Option {
	return func(o *options) {
		o.highWaterMark = n
	}
}

// WithChunkSize sets the size of reads issued against the source.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

func newDefaultOptions() *options {
	return &options{
		highWaterMark: DefaultHighWaterMark,
		chunkSize:     DefaultChunkSize,
	}
}
