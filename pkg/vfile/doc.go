// Package vfile provides File, an in-memory description of a file that may
// not exist on disk yet. It is the unit handed between stages of a file
// processing pipeline.
//
// A File carries a working directory, a base directory, a current path with
// the history of every distinct path it held, an optional fs.FileInfo, the
// file contents and arbitrary custom metadata.
//
// # Contents
//
// Contents are one of three representations:
//   - absent (nil)
//   - buffered ([]byte)
//   - streaming (any io.Reader, stored as a *stream.Cloneable)
//
// Streams are wrapped on assignment so Clone can hand the original and the
// copy independent views of the same bytes. See package stream for the read
// ordering rules.
//
// # Paths
//
// Every path-like value is normalized and stripped of trailing separators.
// Derived accessors (Relative, Dirname, Basename, Stem, Extname) fail with
// ErrPathState while no path is set.
//
// # Usage
//
//	f, err := vfile.New(vfile.Config{
//	    Cwd:      "/",
//	    Base:     "/test",
//	    Path:     "/test/main.js",
//	    Contents: []byte("console.log(1)"),
//	})
//	if err != nil {
//	    return err
//	}
//	f.SetExtname(".mjs")
//	copy, err := f.Clone()
package vfile
