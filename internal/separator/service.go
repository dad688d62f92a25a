package separator

import (
	"context"

	"go.uber.org/zap"

	"tsep/internal/builder"
	"tsep/internal/config"
	"tsep/internal/distribution"
	"tsep/internal/domain"
	"tsep/internal/storage"
	"tsep/internal/strategy"
)

// Result holds every intermediate product of a separation run
type Result struct {
	Resolution *strategy.Resolution
	Collection *domain.Collection
	Keys       []domain.AggregationKey
	Assignment *domain.GroupAssignment
	Manifest   *domain.Manifest
}

// Service runs resolve -> build -> aggregate -> distribute -> write
type Service struct {
	config    *config.Config
	resolver  *strategy.Resolver
	scheduler distribution.Scheduler
	storage   storage.Storage
	logger    *zap.Logger
	progress  builder.Progress
}

// NewService creates a new Service
func NewService(cfg *config.Config, resolver *strategy.Resolver, scheduler distribution.Scheduler, st storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		config:    cfg,
		resolver:  resolver,
		scheduler: scheduler,
		storage:   st,
		logger:    logger,
	}
}

// SetProgress sets the progress sink used while reading reports
func (s *Service) SetProgress(progress builder.Progress) {
	s.progress = progress
}

// SetLogger replaces the logger. A nil logger discards output.
func (s *Service) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

// Resolve validates the configuration and picks the active strategy
func (s *Service) Resolve() (*strategy.Resolution, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	res, err := s.resolver.Resolve()
	s.logAttempts(res)
	return res, err
}

// Collect resolves the strategy and builds the test collection
func (s *Service) Collect(ctx context.Context) (*Result, error) {
	res, err := s.Resolve()
	if err != nil {
		return &Result{Resolution: res}, err
	}

	b, err := builder.ForStrategy(res.Active, s.config, s.progress)
	if err != nil {
		return &Result{Resolution: res}, err
	}
	collection, err := b.Build(ctx)
	if err != nil {
		return &Result{Resolution: res}, err
	}

	for _, p := range collection.UnresolvedPaths {
		s.logger.Warn("Test file is outside the tests directory, using path unmodified",
			zap.String("path", p),
			zap.String("tests_directory", s.config.TestsDirectory))
	}
	for _, p := range collection.SkippedReports {
		s.logger.Warn("Skipped malformed report", zap.String("path", p))
	}
	s.logger.Debug("Collection built",
		zap.String("strategy", collection.Strategy),
		zap.Int("records", len(collection.Records)),
		zap.Int64("total_cost_millis", collection.TotalCostMillis()))

	return &Result{Resolution: res, Collection: collection}, nil
}

// Plan computes the group assignment without writing it
func (s *Service) Plan(ctx context.Context) (*Result, error) {
	result, err := s.Collect(ctx)
	if err != nil {
		return result, err
	}

	level, err := s.config.GetDepthLevel()
	if err != nil {
		return result, err
	}
	result.Keys, err = distribution.Aggregate(result.Collection.Records, level)
	if err != nil {
		return result, err
	}
	result.Assignment, err = s.scheduler.Schedule(result.Keys, s.config.Groups)
	if err != nil {
		return result, err
	}
	result.Manifest = storage.BuildManifest(result.Assignment, s.meta(result), s.config.GroupFilePrefix)

	s.logger.Debug("Groups distributed",
		zap.Int("keys", len(result.Keys)),
		zap.Int("groups", s.config.Groups),
		zap.Int64("spread_millis", result.Assignment.Spread()))
	return result, nil
}

// Run plans the assignment and writes the group manifests
func (s *Service) Run(ctx context.Context) (*Result, error) {
	result, err := s.Plan(ctx)
	if err != nil {
		return result, err
	}
	result.Manifest, err = s.storage.Write(result.Assignment, s.meta(result))
	if err != nil {
		return result, err
	}
	s.logger.Info("Group manifests written",
		zap.String("result_path", s.config.ResultPath),
		zap.Int("groups", len(result.Manifest.Groups)))
	return result, nil
}

func (s *Service) meta(result *Result) domain.ManifestMeta {
	return domain.ManifestMeta{
		Strategy:        string(result.Resolution.Active),
		PrimaryStrategy: string(result.Resolution.Primary),
		DepthLevel:      s.config.DepthLevel,
	}
}

func (s *Service) logAttempts(res *strategy.Resolution) {
	if res == nil || res.PrimaryErr == nil {
		return
	}
	s.logger.Info("Primary strategy is invalid",
		zap.String("strategy", string(res.Primary)),
		zap.Error(res.PrimaryErr))
	for _, a := range res.Attempts {
		if a.Err != nil {
			s.logger.Info("Default strategy is invalid",
				zap.String("strategy", string(a.Strategy)),
				zap.Error(a.Err))
			continue
		}
		s.logger.Info("Using default strategy", zap.String("strategy", string(a.Strategy)))
	}
}
