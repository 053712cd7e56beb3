package vfile

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/vvka-141/vfile/internal/content"
	"github.com/vvka-141/vfile/pkg/stream"
)

// Contents returns nil, a []byte or a *stream.Cloneable.
func (f *File) Contents() any {
	return f.contents
}

// SetContents validates and stores v. Readers are wrapped in a
// *stream.Cloneable unless they already are one. Any other shape than nil,
// []byte or io.Reader fails with ErrContentType.
func (f *File) SetContents(v any) error {
	switch content.Classify(v) {
	case content.Null:
		f.contents = nil
	case content.Buffer:
		f.contents = v
	case content.Stream:
		f.contents = stream.New(v.(io.Reader))
	default:
		return fmt.Errorf("%w: contents can only be a []byte, an io.Reader or nil, got %T", ErrContentType, v)
	}
	return nil
}

// Bytes returns buffered contents, or nil when contents are not buffered.
func (f *File) Bytes() []byte {
	b, _ := f.contents.([]byte)
	return b
}

// Stream returns streaming contents, or nil when contents are not streaming.
func (f *File) Stream() *stream.Cloneable {
	s, _ := f.contents.(*stream.Cloneable)
	return s
}

func (f *File) IsNull() bool   { return content.IsNull(f.contents) }
func (f *File) IsBuffer() bool { return content.IsBuffer(f.contents) }
func (f *File) IsStream() bool { return content.IsStream(f.contents) }

// IsDirectory reports whether contents are absent and Stat describes a directory.
func (f *File) IsDirectory() bool {
	return f.IsNull() && f.stat != nil && f.stat.IsDir()
}

// IsSymbolic reports whether contents are absent and Stat describes a symlink.
func (f *File) IsSymbolic() bool {
	return f.IsNull() && f.stat != nil && f.stat.Mode()&fs.ModeSymlink != 0
}
