// Package scanner turns a directory tree into vfile.File values.
//
// The scanner package is responsible for:
//   - Recursively discovering files, and optionally directories, in a tree
//   - Skipping entries matched by ignore globs
//   - Attaching stat, contents and symlink targets to each File
//   - Tagging each File with a deterministic id and, for buffered reads, a checksum
//   - Retrying opens and reads that fail with transient errors (see internal/retry)
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
