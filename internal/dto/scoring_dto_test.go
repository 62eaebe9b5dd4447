package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hirelens/scoring-engine/internal/models"
)

func TestScoringResultJSONKeepsLegacyKeys(t *testing.T) {
	score := 7.5
	result := ScoringResult{
		SessionID:  uuid.New(),
		FinalScore: 82.4,
		CategoryScores: map[string]*float64{
			CategoryTaskCompletion: &score,
			CategoryCVMatch:        nil,
		},
		WeightsUsed:     map[string]float64{CategoryTaskCompletion: 1},
		DetailedScores:  map[string]float64{"tests_passed_ratio": 10},
		Explanations:    map[string]string{"tests_passed_ratio": "10 of 10 tests passed"},
		PerPromptScores: []PromptScore{{Index: 0, ClarityScore: 8.2}},
		ComponentScores: map[string]float64{"completion": 7.5},
		Fraud:           FraudReport{Flags: []string{}},
		ModelReview:     models.DisabledModelReview(),
		ScoredAt:        time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, key := range []string{
		"session_id", "final_score", "category_scores", "weights_used",
		"detailed_scores", "explanations", "per_prompt_scores",
		"component_scores", "fraud", "soft_signals", "model_review", "scored_at",
	} {
		require.Contains(t, decoded, key)
	}

	var categories map[string]*float64
	require.NoError(t, json.Unmarshal(decoded["category_scores"], &categories))
	require.Contains(t, categories, CategoryCVMatch)
	require.Nil(t, categories[CategoryCVMatch])
	require.NotNil(t, categories[CategoryTaskCompletion])
}

func TestScoringResultJSONRoundTrip(t *testing.T) {
	score := 6.0
	original := ScoringResult{
		SessionID:      uuid.New(),
		FinalScore:     61.2,
		CategoryScores: map[string]*float64{CategoryApproach: &score},
		Fraud: FraudReport{
			Flags:            []string{FlagInjectionAttempt},
			InjectionAttempt: true,
		},
		ModelReview: models.DisabledModelReview(),
		ScoredAt:    time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ScoringResult
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, original.FinalScore, decoded.FinalScore)
	require.Equal(t, original.Fraud.Flags, decoded.Fraud.Flags)
	require.Equal(t, models.ModelReviewDisabled, decoded.ModelReview.State)
}

func TestCategoriesOrderIsStable(t *testing.T) {
	categories := Categories()

	require.Len(t, categories, 8)
	require.Equal(t, CategoryTaskCompletion, categories[0])
	require.Equal(t, CategoryCVMatch, categories[7])
}

func TestFraudReportHelpers(t *testing.T) {
	clean := FraudReport{Flags: []string{}}
	require.True(t, clean.Clean())
	require.False(t, clean.HasFlag(FlagExternalPaste))

	flagged := FraudReport{Flags: []string{FlagExternalPaste, FlagSuspiciouslyFast}}
	require.False(t, flagged.Clean())
	require.True(t, flagged.HasFlag(FlagSuspiciouslyFast))
}
