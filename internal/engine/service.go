package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

// Publisher delivers completed runs to a downstream sink.
type Publisher interface {
	PublishRun(ctx context.Context, run *domain.SimulationRun) error
}

// Service orchestrates one simulation request: build, label enrichment,
// and optional publication. The underlying builder stays pure; all side
// effects live here.
type Service struct {
	builder   *Builder
	resolver  domain.PlaceResolver
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics

	selfCheck    sync.Once
	selfCheckErr error
}

// NewService creates a Service. resolver and publisher may be nil to
// disable geocoded labels and publication respectively.
func NewService(builder *Builder, resolver domain.PlaceResolver, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		builder:   builder,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Simulate builds a run for cfg. Publication failures are logged and
// counted but do not fail the request; the caller still receives the run.
func (s *Service) Simulate(ctx context.Context, cfg domain.SimulationConfig) (*domain.SimulationRun, error) {
	run, err := s.builder.BuildRun(cfg)
	if err != nil {
		s.metrics.SimulationErrors.Inc()
		return nil, err
	}

	domain.EnrichWithPlaces(ctx, run, s.resolver, s.logger)

	if s.publisher != nil {
		if err := s.publisher.PublishRun(ctx, run); err != nil {
			s.logger.Error("publish run failed", "run_id", run.RunID, "error", err)
			s.metrics.PublishErrors.Inc()
		} else {
			s.metrics.RunsPublished.Inc()
		}
	}

	return run, nil
}

// selfCheckConfig is a minimal configuration exercising the build path
// end to end for the readiness probe.
var selfCheckConfig = domain.SimulationConfig{
	TotalDays:    1,
	HoursPerStep: 12,
	ZoneCount:    1,
}

// CheckReadiness verifies once that the engine produces a well-formed
// run, then reports ready for the lifetime of the process.
func (s *Service) CheckReadiness(_ context.Context) error {
	s.selfCheck.Do(func() {
		_, s.selfCheckErr = s.builder.BuildRun(selfCheckConfig)
	})
	return s.selfCheckErr
}
