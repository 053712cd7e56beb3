package vfile

import (
	"strings"

	"github.com/vvka-141/vfile/internal/content"
)

// Inspect returns a debug label such as
//
//	<File "src/main.go" <Buffer 70 61 63 6b>>
//
// The path is shown relative to Base when possible. A File with neither path
// nor contents renders as "<File >".
func (f *File) Inspect() string {
	var parts []string

	if f.path != "" {
		p, err := f.Relative()
		if err != nil {
			p = f.path
		}
		parts = append(parts, `"`+p+`"`)
	}

	switch v := f.contents.(type) {
	case nil:
	case []byte:
		parts = append(parts, content.InspectBuffer(v))
	default:
		parts = append(parts, content.InspectStream(v))
	}

	return "<File " + strings.Join(parts, " ") + ">"
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return f.Inspect()
}
