// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/campuslens/campuslens/internal/adapters/source"
	"github.com/campuslens/campuslens/internal/domain/model"
	"github.com/campuslens/campuslens/internal/domain/normalize"
	"github.com/campuslens/campuslens/internal/domain/summary"
	"github.com/campuslens/campuslens/internal/domain/types"
	"github.com/campuslens/campuslens/pkg/logger"
	"github.com/campuslens/campuslens/pkg/metrics"
)

// Service computes dashboard payloads on demand. Every request rebuilds
// its datasets from the provider and runs the full normalize -> aggregate
// -> assemble pipeline; no state is shared between requests, so the
// service is safe to call concurrently.
type Service struct {
	provider  source.Provider
	assembler *summary.Assembler
	logger    logger.Logger

	// Request counters exposed via /stats.
	requests      atomic.Int64
	bundleErrors  atomic.Int64
	summaryErrors atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider sets the dataset provider.
func WithProvider(p source.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithTopN sets how many entries top-N rankings return.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.assembler = summary.New(summary.WithTopN(n))
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		assembler: summary.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dashboard computes the three summary bundles from fresh data. Each
// dataset fails independently: a load or schema failure becomes a
// whole-bundle error for that kind while the other bundles compute
// normally.
func (s *Service) Dashboard(ctx context.Context) types.Dashboard {
	s.requests.Add(1)
	return types.Dashboard{
		Exam:      s.examBundle(ctx),
		Placement: s.placementBundle(ctx),
		Faculty:   s.facultyBundle(ctx),
	}
}

func (s *Service) examBundle(ctx context.Context) summary.Bundle {
	raw, err := s.provider.Exam(ctx)
	if err != nil {
		return s.failBundle(ctx, model.KindExam, err)
	}
	metrics.RecordDatasetLoad(string(model.KindExam))

	start := time.Now()
	table, err := normalize.Exam(raw)
	if err != nil {
		return s.failBundle(ctx, model.KindExam, err)
	}
	metrics.RecordNormalization(string(model.KindExam), len(table.Records), table.Rejected)
	metrics.RecordNormalizeDuration(string(model.KindExam), float64(time.Since(start).Milliseconds()))

	return s.assemble(ctx, model.KindExam, func() summary.Bundle { return s.assembler.Exam(table) })
}

func (s *Service) placementBundle(ctx context.Context) summary.Bundle {
	raw, err := s.provider.Placement(ctx)
	if err != nil {
		return s.failBundle(ctx, model.KindPlacement, err)
	}
	metrics.RecordDatasetLoad(string(model.KindPlacement))

	start := time.Now()
	table, err := normalize.Placement(raw)
	if err != nil {
		return s.failBundle(ctx, model.KindPlacement, err)
	}
	metrics.RecordNormalization(string(model.KindPlacement), len(table.Records), table.Rejected)
	metrics.RecordNormalizeDuration(string(model.KindPlacement), float64(time.Since(start).Milliseconds()))

	return s.assemble(ctx, model.KindPlacement, func() summary.Bundle { return s.assembler.Placement(table) })
}

func (s *Service) facultyBundle(ctx context.Context) summary.Bundle {
	raw, err := s.provider.Faculty(ctx)
	if err != nil {
		return s.failBundle(ctx, model.KindFaculty, err)
	}
	metrics.RecordDatasetLoad(string(model.KindFaculty))

	start := time.Now()
	table, err := normalize.Faculty(raw)
	if err != nil {
		return s.failBundle(ctx, model.KindFaculty, err)
	}
	metrics.RecordNormalization(string(model.KindFaculty), len(table.Records), table.Rejected)
	metrics.RecordNormalizeDuration(string(model.KindFaculty), float64(time.Since(start).Milliseconds()))

	return s.assemble(ctx, model.KindFaculty, func() summary.Bundle { return s.assembler.Faculty(table) })
}

// failBundle converts a dataset-level failure into a whole-bundle error.
func (s *Service) failBundle(ctx context.Context, kind model.Kind, err error) summary.Bundle {
	s.bundleErrors.Add(1)
	metrics.RecordDatasetLoadError(string(kind))
	metrics.RecordBundleError(string(kind))
	if s.logger != nil {
		s.logger.Warn(ctx, "dataset unavailable",
			logger.String("dataset", string(kind)), logger.Error(err))
	}
	return summary.Failed(err.Error())
}

// assemble times one bundle assembly and records its outcome.
func (s *Service) assemble(ctx context.Context, kind model.Kind, fn func() summary.Bundle) summary.Bundle {
	start := time.Now()
	b := fn()
	metrics.RecordBundleComputed(string(kind))
	metrics.RecordComputeDuration(string(kind), float64(time.Since(start).Milliseconds()))
	if failed := b.FailedSummaries(); len(failed) > 0 {
		s.summaryErrors.Add(int64(len(failed)))
		for _, name := range failed {
			metrics.RecordSummaryError(string(kind), name)
		}
		if s.logger != nil {
			s.logger.Debug(ctx, "bundle assembled with partial errors",
				logger.String("dataset", string(kind)), logger.Int("failed_summaries", len(failed)))
		}
	}
	return b
}

// GetStats returns service counters for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"requests":       s.requests.Load(),
		"bundle_errors":  s.bundleErrors.Load(),
		"summary_errors": s.summaryErrors.Load(),
	}
}
