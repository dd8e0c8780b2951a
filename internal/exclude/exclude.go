// Package exclude decides whether a document path is excluded from
// formatting by a set of glob patterns.
//
// Matching is a pure predicate with no filesystem access. Untitled
// documents (empty path) are never excluded.
package exclude

import (
	stdpath "path"
	"path/filepath"
	"strings"
)

// Match reports whether path matches any of the given glob patterns.
func Match(patterns []string, path string) bool {
	if path == "" {
		return false
	}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if matchGlob(pattern, path) {
			return true
		}
	}
	return false
}

// matchGlob matches one slash-normalized path against one glob pattern.
// Patterns containing "**" are reduced to prefix/substring/suffix checks
// on the segments around the wildcards; everything else goes through
// stdpath.Match.
func matchGlob(pattern, filePath string) bool {
	pattern = filepath.ToSlash(pattern)
	filePath = filepath.ToSlash(filePath)

	if strings.Contains(pattern, "**") {
		// Splitting on "**" leaves empty strings where the wildcards
		// were: "**/vendor/**" gives ["", "/vendor/", ""], "src/**"
		// gives ["src/", ""].
		parts := strings.Split(pattern, "**")

		if len(parts) == 3 && parts[0] == "" && parts[2] == "" {
			// Wildcards on both ends: the middle may sit anywhere.
			return strings.Contains(filePath, parts[1])
		}

		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			switch {
			case prefix == "" && suffix != "":
				// "**/name": a trailing segment or any directory.
				return strings.HasSuffix(filePath, suffix) || strings.Contains(filePath, "/"+suffix+"/")
			case suffix == "" && prefix != "":
				// "dir/**": anything under the prefix.
				return strings.HasPrefix(filePath, prefix) || strings.HasPrefix(filePath, "/"+prefix)
			case prefix != "" && suffix != "":
				// "dir/**/name".
				hasPrefix := strings.HasPrefix(filePath, prefix) || strings.HasPrefix(filePath, "/"+prefix)
				hasSuffix := strings.HasSuffix(filePath, suffix)
				return hasPrefix && hasSuffix
			}
			return true
		}
	}

	// stdpath.Match treats '/' as the separator regardless of platform,
	// which is why paths were normalized above. A bare pattern such as
	// "*.php" should hit files in any directory, so try the base name
	// before the full path.
	baseName := filePath[strings.LastIndex(filePath, "/")+1:]
	if matched, _ := stdpath.Match(pattern, baseName); matched {
		return true
	}
	matched, _ := stdpath.Match(pattern, filePath)
	return matched
}
