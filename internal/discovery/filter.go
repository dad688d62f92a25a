package discovery

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Filter matches test file names against a glob pattern
type Filter struct {
	pattern string
	matcher glob.Glob
}

// NewFilter compiles pattern. An empty pattern matches every file.
// Supports patterns like "*Test.php" or "*{Api,Unit}Cest.php".
func NewFilter(pattern string) (*Filter, error) {
	f := &Filter{pattern: pattern}
	if pattern == "" {
		return f, nil
	}
	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	f.matcher = matcher
	return f, nil
}

// Match reports whether the base name of path matches the pattern
func (f *Filter) Match(path string) bool {
	if f.matcher == nil {
		return true
	}
	return f.matcher.Match(filepath.Base(path))
}

// FilterByName keeps the paths whose base name matches the pattern
func (f *Filter) FilterByName(paths []string) []string {
	var filtered []string
	for _, p := range paths {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Pattern returns the source pattern
func (f *Filter) Pattern() string {
	return f.pattern
}
