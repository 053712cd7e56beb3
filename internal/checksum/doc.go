// Package checksum provides content hashing for buffered and streaming file
// contents.
//
// Both entry points produce the same lowercase hex SHA-256 digest for the
// same bytes, so a checksum computed while scanning a buffered file can be
// compared with one computed later from a stream clone.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.CalculateRaw(data)
//	sum, size, err := calculator.CalculateReader(f.Stream())
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
