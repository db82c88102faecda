package utils

import (
	"os"
	"path/filepath"
)

// maxUpwardSearchLevels limits how far up the directory tree to look
const maxUpwardSearchLevels = 20

// FindConfigFile searches start and its parents for the first of names.
// start may be a file, in which case the search begins at its directory.
// Returns an empty string when nothing is found.
func FindConfigFile(start string, names []string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}
