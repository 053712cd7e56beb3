package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual entry with its metadata and content accessors
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked root
	RelativePath() string

	// Info returns entry metadata. Symbolic links are not followed.
	Info() FileInfo

	// ReadContent returns the whole content
	ReadContent() ([]byte, error)

	// Open returns a reader over the content. The caller closes it.
	Open() (io.ReadCloser, error)

	// Readlink returns the target of a symbolic link
	Readlink() (string, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling the provided function for each file and directory
	// The function receives the file/directory and any error encountered
	// If the function returns an error, walking stops
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
