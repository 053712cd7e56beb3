package scanner

import (
	"fmt"
	"path"
)

// ReadMode selects how file contents are attached to scanned Files.
type ReadMode string

const (
	// ReadBuffer reads every file into memory.
	ReadBuffer ReadMode = "buffer"
	// ReadStream attaches a stream that opens the file on first read.
	ReadStream ReadMode = "stream"
	// ReadNone leaves contents absent.
	ReadNone ReadMode = "none"
)

// Custom metadata keys set on every scanned File.
const (
	KeyID       = "id"
	KeyChecksum = "checksum"
)

// Options controls a single scan.
type Options struct {
	// Base overrides the base of every File. Defaults to the scanned directory.
	Base string

	// Read defaults to ReadBuffer.
	Read ReadMode

	// HighWaterMark bounds stream buffering, see stream.WithHighWaterMark.
	// Zero keeps the stream default.
	HighWaterMark int

	// IncludeDirs also emits directories, with absent contents.
	IncludeDirs bool

	// Ignore holds path.Match globs. A pattern matches an entry when it matches
	// its slash-separated relative path, any ancestor of it, or any single
	// path element.
	Ignore []string
}

func (o Options) validate() error {
	switch o.Read {
	case "", ReadBuffer, ReadStream, ReadNone:
	default:
		return fmt.Errorf("unknown read mode %q", o.Read)
	}
	for _, p := range o.Ignore {
		if _, err := path.Match(p, ""); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	return nil
}

func (o Options) ignored(rel string) bool {
	if len(o.Ignore) == 0 {
		return false
	}
	for prefix := rel; prefix != "." && prefix != "/"; prefix = path.Dir(prefix) {
		elem := path.Base(prefix)
		for _, p := range o.Ignore {
			// Patterns were validated, so Match cannot fail here.
			if ok, _ := path.Match(p, prefix); ok {
				return true
			}
			if ok, _ := path.Match(p, elem); ok {
				return true
			}
		}
	}
	return false
}
