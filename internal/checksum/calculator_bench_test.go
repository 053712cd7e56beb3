package checksum

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkCalculateRaw(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("console.log(1);\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateRaw(content)
	}
}

func BenchmarkCalculateReader(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("console.log(1);\n", 1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := calculator.CalculateReader(bytes.NewReader(content)); err != nil {
			b.Fatal(err)
		}
	}
}
