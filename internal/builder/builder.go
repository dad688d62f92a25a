package builder

import (
	"context"
	"fmt"

	"tsep/internal/config"
	"tsep/internal/discovery"
	"tsep/internal/domain"
	"tsep/internal/strategy"
)

// Builder turns a raw source into a collection of test records.
// Every call reads its inputs again and returns fresh records.
type Builder interface {
	Build(ctx context.Context) (*domain.Collection, error)
}

// Progress is notified once per processed source file
type Progress interface {
	Start(total int)
	Increment()
	Finish()
}

// ForStrategy returns the builder implementing id
func ForStrategy(id strategy.ID, cfg *config.Config, progress Progress) (Builder, error) {
	switch id {
	case strategy.Codeception:
		return NewReportBuilder(cfg, progress), nil
	case strategy.MethodSize:
		filter, err := discovery.NewFilter(cfg.FilePattern)
		if err != nil {
			return nil, err
		}
		return NewMethodSizeBuilder(cfg, discovery.NewParser(), filter), nil
	case strategy.DefaultGroups:
		return NewDefaultGroupsBuilder(cfg), nil
	}
	return nil, fmt.Errorf("%w: %q", strategy.ErrUnknownStrategy, id)
}

type noProgress struct{}

func (noProgress) Start(int)  {}
func (noProgress) Increment() {}
func (noProgress) Finish()    {}
