package domain

import "fmt"

// DepthLevel is the granularity at which tests are grouped
type DepthLevel string

const (
	DirectoryLevel DepthLevel = "directory"
	ClassLevel     DepthLevel = "class"
	MethodLevel    DepthLevel = "method"
)

// DepthLevels lists every supported depth level
var DepthLevels = []DepthLevel{DirectoryLevel, ClassLevel, MethodLevel}

// ParseDepthLevel converts a configured value into a DepthLevel
func ParseDepthLevel(s string) (DepthLevel, error) {
	for _, l := range DepthLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown depth level %q", s)
}

// Valid reports whether l is one of the supported levels
func (l DepthLevel) Valid() bool {
	_, err := ParseDepthLevel(string(l))
	return err == nil
}
