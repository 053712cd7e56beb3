package vfile

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/vvka-141/vfile/internal/content"
	"github.com/vvka-141/vfile/pkg/stream"
)

type cloneOptions struct {
	deep     bool
	contents bool
}

// CloneOption configures Clone.
type CloneOption func(*cloneOptions)

// WithDeep deep-copies every custom metadata value instead of sharing it.
func WithDeep(deep bool) CloneOption {
	return func(o *cloneOptions) {
		o.deep = deep
	}
}

// WithContents controls whether buffered contents are copied. With false the
// clone shares the original's buffer. Streams are always split into a new view.
func WithContents(copyContents bool) CloneOption {
	return func(o *cloneOptions) {
		o.contents = copyContents
	}
}

// Clone returns an independent copy of f. Custom metadata is copied shallowly
// unless WithDeep(true) is passed.
//
// Cloning streaming contents fails with stream.ErrStarted once data has been
// read from any view of the stream.
func (f *File) Clone(opts ...CloneOption) (*File, error) {
	o := cloneOptions{contents: true}
	for _, opt := range opts {
		opt(&o)
	}

	c := &File{
		cwd:     f.cwd,
		base:    f.base,
		path:    f.path,
		history: append([]string(nil), f.history...),
		symlink: f.symlink,
		stat:    snapshotStat(f.stat),
	}

	switch v := f.contents.(type) {
	case nil:
	case []byte:
		if o.contents {
			c.contents = content.CloneBuffer(v)
		} else {
			c.contents = v
		}
	case *stream.Cloneable:
		view, err := v.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone contents: %w", err)
		}
		c.contents = view
	}

	c.custom = f.custom.Copy()
	if o.deep {
		f.custom.Scan(func(k string, v any) bool {
			c.custom.Set(k, deepcopy.Copy(v))
			return true
		})
	}

	return c, nil
}

// Cloner is implemented by types that embed *File and want Clone to return
// their own type.
type Cloner[T any] interface {
	Entity
	// WithFile returns a copy of the receiver backed by f.
	WithFile(f *File) T
}

// CloneAs clones the File inside v and rebuilds v's concrete type around it,
// so fields and methods of the embedding type survive the clone.
func CloneAs[T Cloner[T]](v T, opts ...CloneOption) (T, error) {
	f, err := v.VFile().Clone(opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.WithFile(f), nil
}

// statSnapshot is a detached copy of an fs.FileInfo.
type statSnapshot struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	sys     any
}

func snapshotStat(info fs.FileInfo) fs.FileInfo {
	if info == nil {
		return nil
	}
	return &statSnapshot{
		name:    info.Name(),
		size:    info.Size(),
		mode:    info.Mode(),
		modTime: info.ModTime(),
		sys:     deepcopy.Copy(info.Sys()),
	}
}

func (s *statSnapshot) Name() string       { return s.name }
func (s *statSnapshot) Size() int64        { return s.size }
func (s *statSnapshot) Mode() fs.FileMode  { return s.mode }
func (s *statSnapshot) ModTime() time.Time { return s.modTime }
func (s *statSnapshot) IsDir() bool        { return s.mode.IsDir() }
func (s *statSnapshot) Sys() any           { return s.sys }
