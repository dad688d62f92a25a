package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStrategy = errors.New("unknown separating strategy")

	// ErrStrategyValidation is matched by every *StrategyError
	ErrStrategyValidation = errors.New("strategy configuration is invalid")

	ErrReportsDirNotSet       = errors.New("path to codeception reports directory is empty")
	ErrReportsDirEmpty        = errors.New("codeception reports directory is empty")
	ErrNoSuiteDirectories     = errors.New("tests suites directories collection is empty")
	ErrDefaultGroupsDirNotSet = errors.New("path to default groups is empty")
	ErrDefaultGroupsDirEmpty  = errors.New("default groups directory is empty")

	ErrNoDefaultStrategies = errors.New("default separating strategies not found or empty")
	ErrAllDefaultsInvalid  = errors.New("all default separating strategies are invalid")
)

// StrategyError reports a strategy whose required inputs are missing or empty
type StrategyError struct {
	Strategy ID
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() []error {
	return []error{ErrStrategyValidation, e.Err}
}

// Attempt records one fallback candidate that was validated. Err is nil for the adopted one.
type Attempt struct {
	Strategy ID
	Err      error
}

// ExhaustedError is returned when every default strategy failed validation.
// It matches ErrAllDefaultsInvalid and never ErrStrategyValidation.
type ExhaustedError struct {
	Primary    ID
	PrimaryErr error
	Attempts   []Attempt
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Err.Error())
	}
	return fmt.Sprintf("%v: %v; tried %s", ErrAllDefaultsInvalid, e.PrimaryErr, strings.Join(parts, "; "))
}

func (e *ExhaustedError) Unwrap() error {
	return ErrAllDefaultsInvalid
}
