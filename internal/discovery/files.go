package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListRegularFiles returns the regular files directly inside dir, sorted by name.
// Directories, symlinks and other special entries are excluded.
func ListRegularFiles(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	// ReadDir already sorts, keep it explicit since callers rely on stable order
	sort.Strings(files)
	return files, nil
}

// HasRegularFiles reports whether dir exists and contains at least one regular file
func HasRegularFiles(dir string) bool {
	if dir == "" {
		return false
	}
	files, err := ListRegularFiles(dir)
	return err == nil && len(files) > 0
}
