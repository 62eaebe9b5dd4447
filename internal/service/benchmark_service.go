package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/stat"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
	"github.com/hirelens/scoring-engine/internal/observability"
)

// BenchmarkService ranks a scored session against the historical population
// of completed sessions on the same task. The population is treated as an
// immutable snapshot supplied by the caller.
type BenchmarkService interface {
	Benchmark(ctx context.Context, target dto.ScoringResult, population []dto.ScoringResult) dto.BenchmarkResult
}

type benchmarkService struct {
	cfg    config.Config
	logger zerolog.Logger
}

// NewBenchmarkService constructs the benchmark service.
func NewBenchmarkService(cfg config.Config, logger zerolog.Logger) BenchmarkService {
	observability.RegisterMetrics()
	return &benchmarkService{
		cfg:    cfg,
		logger: logger.With().Str("component", "benchmark_service").Logger(),
	}
}

func (s *benchmarkService) Benchmark(ctx context.Context, target dto.ScoringResult, population []dto.ScoringResult) dto.BenchmarkResult {
	tracer := otel.Tracer("github.com/hirelens/scoring-engine/internal/service/benchmark")
	_, span := tracer.Start(ctx, "scoring.benchmark")
	span.SetAttributes(attribute.Int("benchmark.sample_size", len(population)))
	defer span.End()

	if len(population) < s.cfg.BenchmarkMinSample {
		observability.BenchmarkRequests().WithLabelValues("false").Inc()
		return dto.BenchmarkResult{
			Available:            false,
			SampleSize:           len(population),
			DimensionPercentiles: map[string]float64{},
			Message: fmt.Sprintf("benchmark unavailable: %d completed sessions on this task, need at least %d",
				len(population), s.cfg.BenchmarkMinSample),
		}
	}

	finals := make([]float64, 0, len(population))
	for _, result := range population {
		finals = append(finals, result.FinalScore)
	}
	overall := percentileRank(target.FinalScore, finals)

	dimensions := make(map[string]float64)
	for _, category := range dto.Categories() {
		targetScore := target.CategoryScore(category)
		if targetScore == nil {
			continue
		}
		values := make([]float64, 0, len(population))
		for _, result := range population {
			if score := result.CategoryScore(category); score != nil {
				values = append(values, *score)
			}
		}
		if len(values) == 0 {
			continue
		}
		dimensions[category] = percentileRank(*targetScore, values)
	}

	mean, std := stat.MeanStdDev(finals, nil)
	observability.BenchmarkRequests().WithLabelValues("true").Inc()

	s.logger.Debug().
		Int("sample_size", len(population)).
		Float64("overall_percentile", overall).
		Msg("benchmark computed")

	return dto.BenchmarkResult{
		Available:            true,
		SampleSize:           len(population),
		OverallPercentile:    floatPtr(overall),
		DimensionPercentiles: dimensions,
		Message:              fmt.Sprintf("population mean %.1f (stddev %.1f)", mean, std),
	}
}

// percentileRank is the inclusive rank of v within the distribution: the
// fraction of values at or below v, scaled to 0-100 and rounded to one
// decimal. Ties count in the candidate's favor.
func percentileRank(v float64, distribution []float64) float64 {
	if len(distribution) == 0 {
		return 0
	}
	atOrBelow := 0
	for _, d := range distribution {
		if d <= v {
			atOrBelow++
		}
	}
	return round1(float64(atOrBelow) / float64(len(distribution)) * 100)
}
