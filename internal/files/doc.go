// Package files groups the packages that turn a directory tree into vfile.File
// values:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: File discovery, contents loading and checksum calculation
//
// # Usage
//
//	fileScanner := scanner.NewScanner(checksum.New(), logging.NewNullLogger())
//	result, err := fileScanner.ScanDirectory("./src", scanner.Options{Read: scanner.ReadStream})
package files
