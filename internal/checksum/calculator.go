package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of in-memory content.
	CalculateRaw(content []byte) string

	// CalculateReader consumes r to EOF and returns its checksum together
	// with the number of bytes read.
	CalculateReader(r io.Reader) (string, int64, error)
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

var _ Calculator = SHA256{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateReader computes SHA-256 of everything r yields.
func (c SHA256) CalculateReader(r io.Reader) (string, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
