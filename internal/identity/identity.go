// Package identity derives stable identifiers for scanned files.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceFile is the UUID v5 namespace for file identities, derived from
// "vfile/file-identity/v1" within the URL namespace.
var NamespaceFile = uuid.NewSHA1(uuid.NameSpaceURL, []byte("vfile/file-identity/v1"))

// ForPath returns a deterministic UUID v5 for a path relative to the scan
// root. Separators are converted to forward slashes and a leading "./" is
// dropped, so the same tree yields the same IDs on every platform.
//
// Examples:
//   - "./src/main.go" → uuid_v5(namespace, "src/main.go")
//   - "src\\main.go"  → uuid_v5(namespace, "src/main.go") on Windows
func ForPath(rel string) uuid.UUID {
	return uuid.NewSHA1(NamespaceFile, []byte(normalizePath(rel)))
}

func normalizePath(rel string) string {
	return strings.TrimPrefix(filepath.ToSlash(rel), "./")
}
