package builder

import (
	"path"
	"path/filepath"
	"strings"

	"tsep/internal/domain"
)

// relativizer strips the tests directory from file paths
type relativizer struct {
	prefixes   []string
	unresolved []string
	seen       map[string]bool
}

func newRelativizer(prefixes []string) *relativizer {
	return &relativizer{prefixes: prefixes, seen: make(map[string]bool)}
}

// relative returns p without the tests directory prefix.
// When no prefix matches, p is returned unmodified and remembered as unresolved.
func (r *relativizer) relative(p string) string {
	p = filepath.ToSlash(p)
	for _, prefix := range r.prefixes {
		if rel, ok := strings.CutPrefix(p, prefix); ok && rel != "" {
			return rel
		}
	}
	if !r.seen[p] {
		r.seen[p] = true
		r.unresolved = append(r.unresolved, p)
	}
	return p
}

// record builds a TestRecord, deriving the relative and parent paths from abs
func (r *relativizer) record(abs, testName string, cost int64) domain.TestRecord {
	rel := r.relative(abs)
	return domain.TestRecord{
		ParentPath:          parentPath(rel),
		AbsoluteFilePath:    abs,
		RelativeFilePath:    rel,
		TestName:            testName,
		EstimatedCostMillis: cost,
	}
}

// parentPath returns the directory of rel with a trailing slash, or "" for top-level files
func parentPath(rel string) string {
	dir := path.Dir(rel)
	if dir == "." {
		return ""
	}
	if dir == "/" {
		return dir
	}
	return dir + "/"
}

// firstToken keeps the first whitespace-delimited token of a raw test name.
// "testLogin with data set #1" becomes "testLogin".
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
