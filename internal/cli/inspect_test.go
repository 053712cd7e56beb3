package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCmd_ArgsValidation(t *testing.T) {
	err := inspectCmd.Args(inspectCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, ExitCodeForError(err))

	assert.Error(t, inspectCmd.Args(inspectCmd, []string{"a", "b"}))
}

func TestInspectCmd_Buffer(t *testing.T) {
	resetFlags()
	dir := writeTree(t, map[string]string{
		"a.txt":     "test",
		"sub/b.txt": "",
	})
	out := captureOutput(t)

	require.NoError(t, runInspect(inspectCmd, []string{dir}))
	assert.Equal(t, "<File \"a.txt\" <Buffer 74 65 73 74>>\n<File \"sub/b.txt\" <Buffer>>\n", out.String())
}

func TestInspectCmd_StreamAndHistory(t *testing.T) {
	resetFlags()
	dir := writeTree(t, map[string]string{"a.txt": "test"})
	out := captureOutput(t)

	inspectFlags.scan.read = "stream"
	inspectFlags.history = true
	require.NoError(t, runInspect(inspectCmd, []string{dir}))

	expected := "<File \"a.txt\" <CloneableStream>>\n  " + filepath.Join(dir, "a.txt") + "\n"
	assert.Equal(t, expected, out.String())
}

func TestInspectCmd_ConfigFile(t *testing.T) {
	resetFlags()
	dir := writeTree(t, map[string]string{
		"vfile.yaml":   "read: none\nignore:\n  - \"*.yaml\"\ninclude_dirs: true\n",
		"src/main.go":  "package main",
		"src/skip.log": "x",
	})
	out := captureOutput(t)

	inspectFlags.scan.ignore = []string{"*.log"}
	require.NoError(t, runInspect(inspectCmd, []string{dir}))
	assert.Equal(t, "<File \"src\">\n<File \"src/main.go\">\n", out.String())
}

func TestInspectCmd_EnvOverride(t *testing.T) {
	resetFlags()
	dir := writeTree(t, map[string]string{"a.txt": "test"})
	out := captureOutput(t)

	t.Setenv("VFILE_READ", "none")
	require.NoError(t, runInspect(inspectCmd, []string{dir}))
	assert.Equal(t, "<File \"a.txt\">\n", out.String())
}

func TestInspectCmd_LogFile(t *testing.T) {
	resetFlags()
	dir := writeTree(t, map[string]string{"a.txt": "test"})
	captureOutput(t)

	logPath := filepath.Join(t.TempDir(), "vfile.log")
	rootFlags.verbose = true
	rootFlags.logFile = logPath
	require.NoError(t, runInspect(inspectCmd, []string{dir}))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[VERBOSE] Scanned <File \"a.txt\"")
	assert.Contains(t, string(data), "[VERBOSE] Inspected 1 files")
}

func TestInspectCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(dir string)
		want  int
	}{
		{
			name:  "invalid read mode",
			setup: func(string) { inspectFlags.scan.read = "mmap" },
			want:  ExitConfigError,
		},
		{
			name: "invalid config file",
			setup: func(dir string) {
				os.WriteFile(filepath.Join(dir, "vfile.yaml"), []byte("high_water_mark: -5\n"), 0644)
			},
			want: ExitConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			dir := t.TempDir()
			tt.setup(dir)
			err := runInspect(inspectCmd, []string{dir})
			require.Error(t, err)
			assert.Equal(t, tt.want, ExitCodeForError(err))
		})
	}
}

func TestInspectCmd_MissingDirectory(t *testing.T) {
	resetFlags()
	err := runInspect(inspectCmd, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Equal(t, ExitSourceNotFound, ExitCodeForError(err))
}
