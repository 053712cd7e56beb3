package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetFlags() {
	rootFlags.verbose = false
	rootFlags.logFile = ""
	inspectFlags.scan = scanFlags{}
	inspectFlags.history = false
	checksumFlags.scan = scanFlags{}
	checksumFlags.jobs = 2
}

// writeTree creates files under a fresh temp directory. Keys are
// slash-separated relative paths.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	return &buf
}
