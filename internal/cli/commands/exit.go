package commands

import (
	"errors"

	"tsep/internal/builder"
	"tsep/internal/config"
	"tsep/internal/distribution"
	"tsep/internal/strategy"
)

// ErrConfiguration marks errors loading the config file or environment
var ErrConfiguration = errors.New("configuration error")

// Process exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitConfig   = 2
	ExitStrategy = 3
	ExitReport   = 4
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfiguration),
		errors.Is(err, config.ErrInvalidTestsDirectory),
		errors.Is(err, config.ErrInvalidResultDirectory),
		errors.Is(err, config.ErrUnknownDepthLevel),
		errors.Is(err, config.ErrInvalidGroupCount),
		errors.Is(err, config.ErrInvalidGroupFilePrefix),
		errors.Is(err, distribution.ErrInvalidGroupCount):
		return ExitConfig
	case errors.Is(err, strategy.ErrUnknownStrategy),
		errors.Is(err, strategy.ErrStrategyValidation),
		errors.Is(err, strategy.ErrNoDefaultStrategies),
		errors.Is(err, strategy.ErrAllDefaultsInvalid):
		return ExitStrategy
	case errors.Is(err, builder.ErrMalformedReport):
		return ExitReport
	}
	return ExitFailure
}
