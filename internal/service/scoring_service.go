package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
	"github.com/hirelens/scoring-engine/internal/models"
	"github.com/hirelens/scoring-engine/internal/observability"
)

// legacyComponentNames maps category names onto the flattened metric names
// that pre-category consumers still read from component_scores.
var legacyComponentNames = map[string]string{
	dto.CategoryTaskCompletion:   "completion",
	dto.CategoryPromptClarity:    "clarity",
	dto.CategoryContextProvision: "context",
	dto.CategoryIndependence:     "independence",
	dto.CategoryUtilization:      "efficiency",
	dto.CategoryCommunication:    "communication",
	dto.CategoryApproach:         "approach",
	dto.CategoryCVMatch:          "cv_match",
}

// ScoringService computes assessment scores from completed-session
// transcripts. All methods are pure with respect to their inputs and safe
// for concurrent use.
type ScoringService interface {
	ScoreSession(ctx context.Context, sessionID uuid.UUID, interactions []models.Interaction, totals models.SessionTotals, cvMatch *models.CVMatchResult) dto.ScoringResult
	ComputeHeuristics(interactions []models.Interaction, totals models.SessionTotals) map[string]dto.SignalResult
}

type scoringService struct {
	cfg      config.Config
	validate *validator.Validate
	logger   zerolog.Logger
	now      func() time.Time
}

// NewScoringService constructs the scoring service.
func NewScoringService(cfg config.Config, validate *validator.Validate, logger zerolog.Logger) ScoringService {
	observability.RegisterMetrics()
	return &scoringService{
		cfg:      cfg,
		validate: validate,
		logger:   logger.With().Str("component", "scoring_service").Logger(),
		now:      time.Now,
	}
}

func (s *scoringService) ScoreSession(ctx context.Context, sessionID uuid.UUID, interactions []models.Interaction, totals models.SessionTotals, cvMatch *models.CVMatchResult) dto.ScoringResult {
	started := time.Now()
	tracer := otel.Tracer("github.com/hirelens/scoring-engine/internal/service/scoring")
	_, span := tracer.Start(ctx, "scoring.score_session")
	span.SetAttributes(
		attribute.String("scoring.session_id", sessionID.String()),
		attribute.Int("scoring.interaction_count", len(interactions)),
	)
	defer span.End()

	perPrompt := make([]dto.PromptScore, 0, len(interactions))
	for i, rec := range interactions {
		analysis := AnalyzePrompt(s.cfg, rec)
		perPrompt = append(perPrompt, dto.PromptScore{
			Index:        i,
			ClarityScore: analysis.ClarityScore,
			IsVague:      analysis.IsVague,
		})
	}

	categories := map[string]dto.CategoryScore{
		dto.CategoryTaskCompletion:   ScoreTaskCompletion(s.cfg, totals),
		dto.CategoryPromptClarity:    ScorePromptClarity(s.cfg, interactions),
		dto.CategoryContextProvision: ScoreContextProvision(s.cfg, interactions),
		dto.CategoryIndependence:     ScoreIndependence(s.cfg, interactions, totals),
		dto.CategoryUtilization:      ScoreUtilization(s.cfg, interactions, totals),
		dto.CategoryCommunication:    ScoreCommunication(s.cfg, interactions),
		dto.CategoryApproach:         ScoreApproach(s.cfg, interactions),
		dto.CategoryCVMatch:          ScoreCVMatch(s.validate, cvMatch),
	}

	fraud := DetectFraud(s.cfg, interactions, totals)

	baseWeights := s.cfg.Weights.Map()
	weightSum := 0.0
	weightedTotal := 0.0
	for _, category := range dto.Categories() {
		result := categories[category]
		if !result.Scored() {
			continue
		}
		weight := baseWeights[category]
		weightSum += weight
		weightedTotal += weight * *result.Score
	}

	final := 0.0
	weightsUsed := make(map[string]float64)
	if weightSum > 0 {
		final = weightedTotal / weightSum * 10
		for _, category := range dto.Categories() {
			if categories[category].Scored() {
				weightsUsed[category] = baseWeights[category] / weightSum
			}
		}
	}

	if fraud.HasFlag(dto.FlagInjectionAttempt) && final > s.cfg.FraudScoreCap {
		final = s.cfg.FraudScoreCap
	}
	final = round2(clampFloat(final, 0, 100))

	categoryScores := make(map[string]*float64)
	detailed := make(map[string]float64)
	explanations := make(map[string]string)
	componentScores := make(map[string]float64)
	for _, category := range dto.Categories() {
		result := categories[category]
		if result.Scored() {
			categoryScores[category] = floatPtr(*result.Score)
			componentScores[legacyComponentNames[category]] = *result.Score
		} else {
			categoryScores[category] = nil
		}
		for name, value := range result.Detailed {
			detailed[name] = value
			componentScores[name] = value
		}
		for name, text := range result.Explanations {
			explanations[name] = text
		}
	}
	componentScores["overall_score"] = final

	observability.ScoringRuns().WithLabelValues(strconv.FormatBool(!fraud.Clean())).Inc()
	for _, flag := range fraud.Flags {
		observability.FraudFlags().WithLabelValues(flag).Inc()
	}
	observability.ScoringDuration().Observe(time.Since(started).Seconds())
	observability.FinalScores().Observe(final)

	s.logger.Debug().
		Str("session_id", sessionID.String()).
		Float64("final_score", final).
		Int("interactions", len(interactions)).
		Int("fraud_flags", len(fraud.Flags)).
		Msg("session scored")

	return dto.ScoringResult{
		SessionID:       sessionID,
		FinalScore:      final,
		CategoryScores:  categoryScores,
		WeightsUsed:     weightsUsed,
		DetailedScores:  detailed,
		Explanations:    explanations,
		PerPromptScores: perPrompt,
		ComponentScores: componentScores,
		Fraud:           fraud,
		SoftSignals:     computeHeuristics(s.cfg, interactions, totals),
		ModelReview:     models.DisabledModelReview(),
		ScoredAt:        s.now().UTC(),
	}
}

func (s *scoringService) ComputeHeuristics(interactions []models.Interaction, totals models.SessionTotals) map[string]dto.SignalResult {
	return computeHeuristics(s.cfg, interactions, totals)
}
