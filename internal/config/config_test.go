package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
	require.Equal(t, 50.0, cfg.FraudScoreCap)
	require.Equal(t, 20, cfg.BenchmarkMinSample)
	require.Equal(t, 0.30, cfg.Weights.TaskCompletion)
}

func TestValidateRejectsBadWeightSum(t *testing.T) {
	cfg := Default()
	cfg.Weights.TaskCompletion = 0.5

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidateRejectsInvertedGapThresholds(t *testing.T) {
	cfg := Default()
	cfg.RushedGapSeconds = 500

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangeCap(t *testing.T) {
	cfg := Default()
	cfg.FraudScoreCap = 150

	require.Error(t, cfg.Validate())
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadHonorsEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCORING_FRAUD_SCORE_CAP", "40")
	t.Setenv("SCORING_BENCHMARK_MIN_SAMPLE", "30")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, 40.0, cfg.FraudScoreCap)
	require.Equal(t, 30, cfg.BenchmarkMinSample)
}

func TestWeightsMapCoversAllCategories(t *testing.T) {
	weights := Default().Weights.Map()

	require.Len(t, weights, 8)
	for category, weight := range weights {
		require.Greater(t, weight, 0.0, "category %s has no weight", category)
	}
}
