package share

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Resolve computes the absolute filesystem path for a caller-supplied
// sub-path inside the folder a share link is scoped to, and guarantees the
// result cannot escape that folder. Every read path (listing, metadata,
// both download routes) must go through here; nothing else in the package
// does its own path math.
//
// shareRoot must already be absolute. folderPath comes from the link record
// and is re-checked too: a record is not trusted to stay inside the root.
// Any escape fails closed with ErrAccessDenied.
func Resolve(shareRoot, folderPath, subPath string) (string, error) {
	root := filepath.Clean(shareRoot)

	base := filepath.Clean(filepath.Join(root, normalizeRel(folderPath)))
	if !contains(root, base) {
		return "", ErrAccessDenied
	}

	full := filepath.Clean(filepath.Join(base, normalizeRel(subPath)))
	if !contains(base, full) {
		return "", ErrAccessDenied
	}

	return full, nil
}

// normalizeRel folds both separator conventions into the platform one so a
// backslash-encoded ".." cannot slip past the containment check, and so the
// check behaves the same for URLs produced on either platform.
func normalizeRel(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	return filepath.FromSlash(p)
}

// contains reports whether candidate equals base or lies beneath it,
// treating base as a path-segment boundary: /shared-evil must not match a
// base of /shared. Windows compares case-insensitively, matching the
// filesystem.
func contains(base, candidate string) bool {
	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if runtime.GOOS == "windows" {
		if strings.EqualFold(candidate, base) {
			return true
		}
		return strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(prefix))
	}

	if candidate == base {
		return true
	}
	return strings.HasPrefix(candidate, prefix)
}
