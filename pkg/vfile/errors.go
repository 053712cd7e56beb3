package vfile

import "errors"

// Sentinel errors for the kinds of contract violations a File reports.
// Check them with errors.Is.
var (
	// ErrConfig indicates an invalid cwd or base value.
	ErrConfig = errors.New("vfile: invalid configuration")

	// ErrPathState indicates a path-derived field was used while no path is set,
	// or an attempt to assign a derived field directly.
	ErrPathState = errors.New("vfile: invalid path state")

	// ErrContentType indicates contents that are neither absent, buffered nor streaming.
	ErrContentType = errors.New("vfile: invalid contents type")

	// ErrValueType indicates a value of the wrong type for a path-like field.
	ErrValueType = errors.New("vfile: invalid value type")
)
