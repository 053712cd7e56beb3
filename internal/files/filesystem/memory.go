package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory entries
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	target  string
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", f.absPath)
	}
	return f.content, nil
}

func (f *memoryFile) Open() (io.ReadCloser, error) {
	content, err := f.ReadContent()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *memoryFile) Readlink() (string, error) {
	if f.info.Mode()&fs.ModeSymlink == 0 {
		return "", fmt.Errorf("not a symbolic link: %s", f.absPath)
	}
	return f.target, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			// Relative paths are reported against the walked directory, like filepath.Walk.
			rel := *entry
			rel.relPath = d.fs.relativeTo(d.absPath, entry.absPath)
			callbackErr = fn(&rel, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes regardless of platform.
type MemoryFileSystem struct {
	files map[string]*memoryFile // absolute path -> entry
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = mfs.dirEntry(root)

	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	data := []byte(content)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relativeTo(mfs.root, absPath),
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSymlink adds a symbolic link pointing at target. The target is stored
// verbatim and never resolved.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	absPath := mfs.resolve(linkPath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relativeTo(mfs.root, absPath),
		target:  target,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(target)),
			mode:    0777 | fs.ModeSymlink,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = mfs.dirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps p to a clean absolute path inside the virtual filesystem.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relativeTo(base, target string) string {
	if target == base {
		return "."
	}
	if base == "/" {
		return strings.TrimPrefix(target, "/")
	}
	return strings.TrimPrefix(target, base+"/")
}

func (mfs *MemoryFileSystem) dirEntry(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: mfs.relativeTo(mfs.root, absPath),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = mfs.dirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		if p == basePath || basePath == "/" || strings.HasPrefix(p, basePath+"/") {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	return file.ReadContent()
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}

var (
	_ FileSystemProvider = (*MemoryFileSystem)(nil)
	_ FileSystemProvider = (*OSFileSystem)(nil)
)
