// Package content classifies File contents into absent, buffered and streaming
// representations and renders short debug previews of them.
package content

import "io"

// Kind is the representation of a contents value.
type Kind int

const (
	// Invalid is any value that is neither absent, buffered nor streaming.
	Invalid Kind = iota
	// Null means no contents.
	Null
	// Buffer is contents fully held in memory as a byte slice.
	Buffer
	// Stream is contents exposed through an io.Reader.
	Stream
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Buffer:
		return "buffer"
	case Stream:
		return "stream"
	default:
		return "invalid"
	}
}

// Classify returns the representation of v. Byte slices are checked before
// readers, so a value is never both buffered and streaming. A nil byte slice
// counts as absent.
func Classify(v any) Kind {
	switch val := v.(type) {
	case nil:
		return Null
	case []byte:
		if val == nil {
			return Null
		}
		return Buffer
	case io.Reader:
		return Stream
	default:
		return Invalid
	}
}

func IsNull(v any) bool   { return Classify(v) == Null }
func IsBuffer(v any) bool { return Classify(v) == Buffer }
func IsStream(v any) bool { return Classify(v) == Stream }
