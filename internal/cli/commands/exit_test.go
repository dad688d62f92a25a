package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tsep/internal/builder"
	"tsep/internal/config"
	"tsep/internal/strategy"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "config load", err: fmt.Errorf("%w: %w", ErrConfiguration, errors.New("yaml: bad")), want: ExitConfig},
		{name: "depth level", err: fmt.Errorf("%w: %q", config.ErrUnknownDepthLevel, "package"), want: ExitConfig},
		{name: "unknown strategy", err: fmt.Errorf("%w: %q", strategy.ErrUnknownStrategy, "allure"), want: ExitStrategy},
		{name: "strategy validation", err: &strategy.StrategyError{Strategy: strategy.Codeception, Err: strategy.ErrReportsDirNotSet}, want: ExitStrategy},
		{name: "fallback exhausted", err: &strategy.ExhaustedError{Primary: strategy.Codeception, PrimaryErr: strategy.ErrReportsDirNotSet}, want: ExitStrategy},
		{name: "malformed report", err: &builder.ParseError{Path: "a.xml", Err: errors.New("EOF")}, want: ExitReport},
		{name: "other", err: errors.New("disk full"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
