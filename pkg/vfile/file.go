package vfile

import (
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/tidwall/btree"

	"github.com/vvka-141/vfile/internal/pathutil"
)

// File is a virtual file. The zero value is not usable; create Files with New
// or NewFromMap. A File is not safe for concurrent mutation.
type File struct {
	cwd     string
	base    string // empty means Base proxies Cwd
	path    string // empty means no path
	history []string
	symlink string

	stat     fs.FileInfo
	contents any // nil, []byte or *stream.Cloneable

	custom *btree.Map[string, any]
}

// Config is the initial state of a File. Zero values mean "not set".
type Config struct {
	// Cwd defaults to the process working directory.
	Cwd string

	// Base defaults to Cwd and keeps following it until set.
	Base string

	// Path is appended to History unless it equals its last element.
	Path string

	// History seeds the path history. The slice is copied, never retained.
	History []string

	Symlink  string
	Stat     fs.FileInfo
	Contents any

	// Custom holds extra metadata carried through Clone untouched.
	Custom map[string]any
}

// processCwd is resolved once, the first time a File needs a default cwd.
var processCwd = sync.OnceValue(func() string {
	wd, err := os.Getwd()
	if err != nil {
		return string(os.PathSeparator)
	}
	return wd
})

// New creates a File from cfg, normalizing every path-like field.
func New(cfg Config) (*File, error) {
	f := &File{
		custom: btree.NewMap[string, any](0),
	}

	cwd := cfg.Cwd
	if cwd == "" {
		cwd = processCwd()
	}
	if err := f.SetCwd(cwd); err != nil {
		return nil, err
	}

	if cfg.Base != "" {
		if err := f.SetBase(cfg.Base); err != nil {
			return nil, err
		}
	}

	// Replaying history through SetPath normalizes each entry, copies the
	// slice and leaves Path at the last element.
	for _, p := range cfg.History {
		f.SetPath(p)
	}
	f.SetPath(cfg.Path)

	if cfg.Symlink != "" {
		f.SetSymlink(cfg.Symlink)
	}

	f.stat = cfg.Stat
	if err := f.SetContents(cfg.Contents); err != nil {
		return nil, err
	}

	for k, v := range cfg.Custom {
		f.custom.Set(k, v)
	}

	return f, nil
}

// Cwd returns the working directory.
func (f *File) Cwd() string {
	return f.cwd
}

// SetCwd normalizes and stores the working directory.
func (f *File) SetCwd(cwd string) error {
	if cwd == "" {
		return fmt.Errorf("%w: cwd must be a non-empty string", ErrConfig)
	}
	f.cwd = pathutil.Normalize(cwd)
	return nil
}

// Base returns the base directory, or Cwd when no base override is set.
func (f *File) Base() string {
	if f.base == "" {
		return f.cwd
	}
	return f.base
}

// SetBase normalizes and stores the base directory. A base equal to the
// current cwd clears the override, so Base keeps following Cwd.
func (f *File) SetBase(base string) error {
	if base == "" {
		return fmt.Errorf("%w: base must be a non-empty string, or reset", ErrConfig)
	}
	base = pathutil.Normalize(base)
	if base == f.cwd {
		f.base = ""
		return nil
	}
	f.base = base
	return nil
}

// ResetBase clears the base override so Base proxies Cwd again.
func (f *File) ResetBase() {
	f.base = ""
}

// Path returns the current path, or "" when none is set.
func (f *File) Path() string {
	return f.path
}

// HasPath reports whether a path is set.
func (f *File) HasPath() bool {
	return f.path != ""
}

// SetPath normalizes p and records it in History. The empty string and the
// current path are no-ops.
func (f *File) SetPath(p string) {
	p = pathutil.Normalize(p)
	if p == "" || p == f.path {
		return
	}
	f.path = p
	if n := len(f.history); n == 0 || f.history[n-1] != p {
		f.history = append(f.history, p)
	}
}

// ClearPath unsets the path. History is left untouched.
func (f *File) ClearPath() {
	f.path = ""
}

// History returns a copy of every distinct path the File has held, oldest first.
func (f *File) History() []string {
	if f.history == nil {
		return []string{}
	}
	out := make([]string, len(f.history))
	copy(out, f.history)
	return out
}

// Symlink returns the symlink target, or "" when none is set.
func (f *File) Symlink() string {
	return f.symlink
}

// SetSymlink normalizes and stores the symlink target.
func (f *File) SetSymlink(target string) {
	f.symlink = pathutil.Normalize(target)
}

// Stat returns the attached file info, or nil.
func (f *File) Stat() fs.FileInfo {
	return f.stat
}

// SetStat attaches file info. nil detaches it.
func (f *File) SetStat(info fs.FileInfo) {
	f.stat = info
}
