package content_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/vfile/internal/content"
	"github.com/vvka-141/vfile/pkg/stream"
)

// Stream is a reader whose type name is exactly "Stream".
type Stream struct{ io.Reader }

func TestInspectStream(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"cloneable", stream.New(strings.NewReader("x")), "<CloneableStream>"},
		{"pipe reader", pr, "<PipeReaderStream>"},
		{"strings reader", strings.NewReader("x"), "<ReaderStream>"},
		{"bare stream type", &Stream{Reader: strings.NewReader("x")}, "<Stream>"},
		{"buffer", []byte("test"), ""},
		{"nil", nil, ""},
		{"string", "foobar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, content.InspectStream(tt.value))
		})
	}
}
