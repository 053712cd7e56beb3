package content

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// maxPreviewBytes is how many bytes InspectBuffer renders before truncating.
const maxPreviewBytes = 50

// CloneBuffer returns an independent copy of b.
func CloneBuffer(b []byte) []byte {
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}

// InspectBuffer renders b as "<Buffer 74 65 73 74>", truncated after 50 bytes.
func InspectBuffer(b []byte) string {
	var sb strings.Builder
	sb.WriteString("<Buffer")

	n := min(len(b), maxPreviewBytes)
	for _, c := range b[:n] {
		fmt.Fprintf(&sb, " %02x", c)
	}
	if rest := len(b) - n; rest > 0 {
		fmt.Fprintf(&sb, " ... %d more bytes", rest)
	}

	sb.WriteByte('>')
	return sb.String()
}

// InspectStream renders a type tag for a streaming value, derived from its
// concrete type name: "<CloneableStream>", "<PipeReaderStream>". A type named
// Stream renders "<Stream>". Non-streaming values render "".
func InspectStream(v any) string {
	if !IsStream(v) {
		return ""
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if name == "Stream" {
		name = ""
	}
	return "<" + name + "Stream>"
}
