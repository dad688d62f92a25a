package strategy

import "slices"

// ID identifies a separating strategy
type ID string

const (
	// Codeception builds the collection from Codeception XML execution reports
	Codeception ID = "codeception"
	// MethodSize builds the collection by counting test methods in suite directories
	MethodSize ID = "method-size"
	// DefaultGroups builds the collection from pre-made group lists
	DefaultGroups ID = "default-groups"
)

// PrimaryStrategies may be configured as the main strategy
var PrimaryStrategies = []ID{Codeception, MethodSize}

// DefaultStrategies may be used as fallbacks
var DefaultStrategies = []ID{MethodSize, DefaultGroups}

// IsPrimary reports whether id may be used as the main strategy
func IsPrimary(id ID) bool {
	return slices.Contains(PrimaryStrategies, id)
}

// IsDefault reports whether id may be used as a fallback strategy
func IsDefault(id ID) bool {
	return slices.Contains(DefaultStrategies, id)
}
