package builder

import (
	"errors"
	"fmt"
)

// ErrMalformedReport is matched by every *ParseError
var ErrMalformedReport = errors.New("malformed report")

// ParseError reports a report file that is not a well-formed execution report
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse report %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedReport, e.Err}
}
