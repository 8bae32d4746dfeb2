// Package target reads the state of the target system that news relevance is
// evaluated against: the active profile and the make.conf configuration.
package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveProfile resolves the active profile name from the make.profile
// symlink. The returned name is the portion of the link target below the
// repository's profiles directory, e.g. "default/linux/amd64/23.0".
func ResolveProfile(symlinkPath string) (string, error) {
	dest, err := os.Readlink(symlinkPath)
	if err != nil {
		return "", fmt.Errorf("resolving profile link: %w", err)
	}

	dest = filepath.ToSlash(filepath.Clean(dest))
	if i := strings.Index(dest, "profiles/"); i >= 0 {
		return dest[i+len("profiles/"):], nil
	}

	// Link points somewhere outside a profiles tree; use the target as-is.
	return strings.TrimPrefix(dest, "/"), nil
}
