package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
)

func newTestBenchmarkService() BenchmarkService {
	return NewBenchmarkService(config.Default(), testLogger())
}

func benchmarkEntry(final float64, cvScore *float64) dto.ScoringResult {
	task := final / 10
	scores := map[string]*float64{
		dto.CategoryTaskCompletion: &task,
		dto.CategoryCVMatch:        cvScore,
	}
	return dto.ScoringResult{
		SessionID:      uuid.New(),
		FinalScore:     final,
		CategoryScores: scores,
	}
}

func uniformPopulation(size int) []dto.ScoringResult {
	population := make([]dto.ScoringResult, 0, size)
	for i := 0; i < size; i++ {
		population = append(population, benchmarkEntry(50+float64(i%40), nil))
	}
	return population
}

func TestBenchmarkSampleSizeBoundary(t *testing.T) {
	svc := newTestBenchmarkService()
	target := benchmarkEntry(75, nil)

	small := svc.Benchmark(context.Background(), target, uniformPopulation(19))
	require.False(t, small.Available)
	require.Equal(t, 19, small.SampleSize)
	require.Nil(t, small.OverallPercentile)
	require.Contains(t, small.Message, "19")

	enough := svc.Benchmark(context.Background(), target, uniformPopulation(20))
	require.True(t, enough.Available)
	require.Equal(t, 20, enough.SampleSize)
	require.NotNil(t, enough.OverallPercentile)
}

func TestBenchmarkPercentileMonotonic(t *testing.T) {
	svc := newTestBenchmarkService()
	population := uniformPopulation(40)

	var previous float64 = -1
	for _, final := range []float64{10, 40, 55, 70, 95} {
		result := svc.Benchmark(context.Background(), benchmarkEntry(final, nil), population)
		require.True(t, result.Available)
		require.GreaterOrEqual(t, *result.OverallPercentile, previous, "percentile must not decrease for score %.0f", final)
		previous = *result.OverallPercentile
	}
}

func TestBenchmarkInclusiveRankCountsTies(t *testing.T) {
	svc := newTestBenchmarkService()

	population := make([]dto.ScoringResult, 0, 20)
	for i := 0; i < 20; i++ {
		population = append(population, benchmarkEntry(80, nil))
	}

	result := svc.Benchmark(context.Background(), benchmarkEntry(80, nil), population)
	require.True(t, result.Available)
	require.Equal(t, 100.0, *result.OverallPercentile)
}

func TestBenchmarkDimensionsExcludeUnscoredSessions(t *testing.T) {
	svc := newTestBenchmarkService()

	population := make([]dto.ScoringResult, 0, 24)
	for i := 0; i < 24; i++ {
		var cv *float64
		if i%2 == 0 {
			score := 4 + float64(i%6)
			cv = &score
		}
		population = append(population, benchmarkEntry(60+float64(i), cv))
	}

	cvTarget := 9.0
	target := benchmarkEntry(90, &cvTarget)
	result := svc.Benchmark(context.Background(), target, population)

	require.True(t, result.Available)
	require.Contains(t, result.DimensionPercentiles, dto.CategoryCVMatch)
	require.Contains(t, result.DimensionPercentiles, dto.CategoryTaskCompletion)

	noCV := svc.Benchmark(context.Background(), benchmarkEntry(90, nil), population)
	require.NotContains(t, noCV.DimensionPercentiles, dto.CategoryCVMatch)
}

func TestPercentileRankFormula(t *testing.T) {
	distribution := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	cases := []struct {
		value    float64
		expected float64
	}{
		{5, 0},
		{10, 10},
		{55, 50},
		{100, 100},
		{150, 100},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("value_%.0f", tc.value), func(t *testing.T) {
			require.Equal(t, tc.expected, percentileRank(tc.value, distribution))
		})
	}
}
