package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize cleans p with the platform rules (resolving "." and "..", collapsing
// repeated separators) and strips trailing separators. The empty string is
// returned unchanged so callers can treat it as "no value".
func Normalize(p string) string {
	if p == "" {
		return p
	}
	return StripTrailingSep(filepath.Clean(p))
}

// StripTrailingSep removes trailing '/' and '\' characters. A string made only of
// separators collapses to its first character.
func StripTrailingSep(p string) string {
	i := len(p)
	for i > 0 && isSep(p[i-1]) {
		i--
	}
	if i == 0 && len(p) > 0 {
		return p[:1]
	}
	return p[:i]
}

// Ext returns the extension of the last path element, including the dot.
// Unlike filepath.Ext, a leading dot does not start an extension, so ".env"
// has no extension while "archive.tar.gz" has ".gz".
func Ext(p string) string {
	base := filepath.Base(p)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

func isSep(c byte) bool {
	return c == '/' || c == '\\'
}
