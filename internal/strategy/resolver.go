package strategy

import (
	"fmt"

	"tsep/internal/config"
	"tsep/internal/discovery"
)

// State is a step of strategy resolution. Resolution only moves forward.
type State int

const (
	Unvalidated State = iota
	PrimaryFailed
	TryingDefault
	Resolved
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unvalidated:
		return "unvalidated"
	case PrimaryFailed:
		return "primary-failed"
	case TryingDefault:
		return "trying-default"
	case Resolved:
		return "resolved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Resolution is the outcome of resolving the configured strategy
type Resolution struct {
	Primary    ID
	Active     ID
	State      State
	PrimaryErr error     // Validation failure of the primary strategy, nil if it was valid
	Attempts   []Attempt // Default strategies tried, in order
	Trace      []State   // Every state entered
}

// FellBack reports whether a default strategy replaced the primary one
func (r *Resolution) FellBack() bool {
	return r.PrimaryErr != nil && r.State == Resolved
}

func (r *Resolution) enter(s State) {
	r.State = s
	r.Trace = append(r.Trace, s)
}

// Resolver picks the strategy to build the test collection with.
// It never modifies the configuration; the chosen strategy is returned in a Resolution.
type Resolver struct {
	config *config.Config
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve validates the primary strategy and walks the default strategies when it is invalid
// and fallback is enabled. The returned Resolution is non-nil even on error.
func (r *Resolver) Resolve() (*Resolution, error) {
	primary := ID(r.config.Strategy)
	res := &Resolution{Primary: primary}
	res.enter(Unvalidated)

	if !IsPrimary(primary) {
		return res, fmt.Errorf("%w: %q", ErrUnknownStrategy, primary)
	}

	err := r.validate(primary)
	if err == nil {
		res.Active = primary
		res.enter(Resolved)
		return res, nil
	}

	res.PrimaryErr = err
	res.enter(PrimaryFailed)
	if !r.config.UseDefaultStrategies {
		return res, err
	}
	if len(r.config.DefaultStrategies) == 0 {
		return res, ErrNoDefaultStrategies
	}

	for _, name := range r.config.DefaultStrategies {
		candidate := ID(name)
		res.enter(TryingDefault)
		if !IsDefault(candidate) {
			return res, fmt.Errorf("%w: unknown default separating strategy %q", ErrUnknownStrategy, candidate)
		}

		err := r.validate(candidate)
		res.Attempts = append(res.Attempts, Attempt{Strategy: candidate, Err: err})
		if err == nil {
			res.Active = candidate
			res.enter(Resolved)
			return res, nil
		}
	}

	res.enter(Exhausted)
	return res, &ExhaustedError{Primary: primary, PrimaryErr: res.PrimaryErr, Attempts: res.Attempts}
}

// validate checks the inputs a strategy needs before it can build a collection
func (r *Resolver) validate(id ID) error {
	var err error
	switch id {
	case Codeception:
		switch {
		case r.config.CodeceptionReportsDir == "":
			err = ErrReportsDirNotSet
		case !discovery.HasRegularFiles(r.config.CodeceptionReportsDir):
			err = ErrReportsDirEmpty
		}
	case MethodSize:
		if len(r.config.SuitesDirectories) == 0 {
			err = ErrNoSuiteDirectories
		}
	case DefaultGroups:
		switch {
		case r.config.DefaultGroupsDir == "":
			err = ErrDefaultGroupsDirNotSet
		case !discovery.HasRegularFiles(r.config.DefaultGroupsDir):
			err = ErrDefaultGroupsDirEmpty
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}

	if err != nil {
		return &StrategyError{Strategy: id, Err: err}
	}
	return nil
}
