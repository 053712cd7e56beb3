// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual entry with metadata, content and link target
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Walks never follow symbolic links. A link is reported as its own entry,
// with fs.ModeSymlink set and its target available through File.Readlink.
package filesystem
