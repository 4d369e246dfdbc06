package filter

import (
	"path"
	"strings"

	"ncdu-import/internal/tree"
)

// Exclude returns the records whose path matches none of the patterns, and
// the number dropped. Patterns ending in "/" match any directory segment; other
// patterns match the base name, or the whole path when they contain "/".
func Exclude(files []tree.SizedFile, patterns []string) ([]tree.SizedFile, int) {
	if len(patterns) == 0 {
		return files, 0
	}

	kept := make([]tree.SizedFile, 0, len(files))
	for _, f := range files {
		if Match(f.Path, patterns) {
			continue
		}
		kept = append(kept, f)
	}
	return kept, len(files) - len(kept)
}

// Match reports whether p is excluded by any pattern.
func Match(p string, patterns []string) bool {
	for _, pattern := range patterns {
		// Directory patterns (ending with /) skip the last segment: records are leaves
		if strings.HasSuffix(pattern, "/") {
			dirPattern := strings.TrimSuffix(pattern, "/")
			parts := strings.Split(p, "/")
			for _, part := range parts[:len(parts)-1] {
				if matched, _ := path.Match(dirPattern, part); matched {
					return true
				}
			}
			continue
		}

		if matched, err := path.Match(pattern, path.Base(p)); err == nil && matched {
			return true
		}
		if strings.Contains(pattern, "/") {
			if matched, err := path.Match(pattern, p); err == nil && matched {
				return true
			}
		}
	}
	return false
}
