package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	osfs := NewOSFileSystem()

	d, err := osfs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	osfs := NewOSFileSystem()

	_, err := osfs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("content"), 0644))

	_, err := NewOSFileSystem().Open(filePath)
	assert.Error(t, err)
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(filePath, []byte("package main"), 0644))

	data, err := NewOSFileSystem().ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(filePath, []byte("package main"), 0644))

	osfs := NewOSFileSystem()

	info, err := osfs.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, "main.go", info.Name())
	assert.Equal(t, int64(12), info.Size())
	assert.False(t, info.IsDir())

	info, err = osfs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = osfs.Stat(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestOSFileSystem_Stat_DoesNotFollowLinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	info, err := NewOSFileSystem().Stat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// dir/
	//   a.txt
	//   sub/
	//     b.txt
	//   link -> a.txt
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("bb"), 0644))
	hasLink := os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link")) == nil

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	contents := map[string]string{}
	var links []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		switch {
		case f.Info().IsDir():
		case f.Info().Mode()&fs.ModeSymlink != 0:
			target, err := f.Readlink()
			require.NoError(t, err)
			links = append(links, filepath.Base(target))
		default:
			rc, err := f.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			contents[filepath.ToSlash(f.RelativePath())] = string(data)
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a.txt": "a", "sub/b.txt": "bb"}, contents)
	if hasLink {
		assert.Equal(t, []string{"a.txt"}, links)
	}
}

func TestOSFile_ReadContent(t *testing.T) {
	dir := t.TempDir()
	expected := "console.log(1)"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte(expected), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var got string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.RelativePath() == "index.js" {
			data, err := f.ReadContent()
			if err != nil {
				return err
			}
			got = string(data)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOSDirectory_Walk_RecoversPanic(t *testing.T) {
	dir := t.TempDir()

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	err = d.Walk(func(File, error) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walk callback panicked")
}
