package vfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/vfile/internal/pathutil"
)

func (f *File) requirePath(field string) error {
	if f.path == "" {
		return fmt.Errorf("%w: no path specified, can not get %s", ErrPathState, field)
	}
	return nil
}

// Relative returns Path relative to Base. A relative Path or Base is first
// resolved against Cwd. No trailing separator is added for directories or
// symlinks, and a Path equal to Base yields "".
func (f *File) Relative() (string, error) {
	if err := f.requirePath("relative"); err != nil {
		return "", err
	}

	rel, err := filepath.Rel(f.resolve(f.Base()), f.resolve(f.path))
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}
	if rel == "." {
		return "", nil
	}
	return rel, nil
}

// resolve makes p absolute against Cwd, and a relative Cwd against the
// process working directory.
func (f *File) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	p = filepath.Join(f.cwd, p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(processCwd(), p)
}

// SetRelative always fails: relative is generated from base and path.
func (f *File) SetRelative(string) error {
	return fmt.Errorf("%w: relative is generated from the base and path, modify those instead", ErrPathState)
}

// Dirname returns the directory part of Path.
func (f *File) Dirname() (string, error) {
	if err := f.requirePath("dirname"); err != nil {
		return "", err
	}
	return filepath.Dir(f.path), nil
}

// SetDirname moves the File to dir, keeping its basename.
func (f *File) SetDirname(dir string) error {
	if err := f.requirePath("dirname"); err != nil {
		return err
	}
	f.SetPath(filepath.Join(dir, filepath.Base(f.path)))
	return nil
}

// Basename returns the last element of Path.
func (f *File) Basename() (string, error) {
	if err := f.requirePath("basename"); err != nil {
		return "", err
	}
	return filepath.Base(f.path), nil
}

// SetBasename renames the File inside its directory.
func (f *File) SetBasename(name string) error {
	if err := f.requirePath("basename"); err != nil {
		return err
	}
	f.SetPath(filepath.Join(filepath.Dir(f.path), name))
	return nil
}

// Stem returns the basename without its extension.
func (f *File) Stem() (string, error) {
	if err := f.requirePath("stem"); err != nil {
		return "", err
	}
	return f.stem(), nil
}

// SetStem replaces the basename while keeping the extension.
func (f *File) SetStem(stem string) error {
	if err := f.requirePath("stem"); err != nil {
		return err
	}
	f.SetPath(filepath.Join(filepath.Dir(f.path), stem+pathutil.Ext(f.path)))
	return nil
}

// Extname returns the extension of Path, including the dot.
func (f *File) Extname() (string, error) {
	if err := f.requirePath("extname"); err != nil {
		return "", err
	}
	return pathutil.Ext(f.path), nil
}

// SetExtname replaces the extension. ext is used verbatim, so it normally
// starts with a dot.
func (f *File) SetExtname(ext string) error {
	if err := f.requirePath("extname"); err != nil {
		return err
	}
	f.SetPath(filepath.Join(filepath.Dir(f.path), f.stem()+ext))
	return nil
}

func (f *File) stem() string {
	return strings.TrimSuffix(filepath.Base(f.path), pathutil.Ext(f.path))
}
