package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/hirelens/scoring-engine/internal/models"
)

// Category names. The snake_case values are the stored payload keys and must
// not change while unmigrated consumers read them.
const (
	CategoryTaskCompletion   = "task_completion"
	CategoryPromptClarity    = "prompt_clarity"
	CategoryContextProvision = "context_provision"
	CategoryIndependence     = "independence"
	CategoryUtilization      = "utilization"
	CategoryCommunication    = "communication"
	CategoryApproach         = "approach"
	CategoryCVMatch          = "cv_match"
)

// Categories returns the category names in their canonical order.
func Categories() []string {
	return []string{
		CategoryTaskCompletion,
		CategoryPromptClarity,
		CategoryContextProvision,
		CategoryIndependence,
		CategoryUtilization,
		CategoryCommunication,
		CategoryApproach,
		CategoryCVMatch,
	}
}

// CategoryScore is the result of one category scorer. Score is nil when the
// category could not be evaluated; a non-nil score is always accompanied by
// at least one detailed sub-metric.
type CategoryScore struct {
	Score        *float64           `json:"score"`
	Detailed     map[string]float64 `json:"detailed"`
	Explanations map[string]string  `json:"explanations"`
}

// Scored reports whether the category produced a usable score.
func (c CategoryScore) Scored() bool {
	return c.Score != nil
}

// PromptScore carries the per-prompt clarity verdict, one entry per
// interaction in transcript order.
type PromptScore struct {
	Index        int     `json:"index"`
	ClarityScore float64 `json:"clarity_score"`
	IsVague      bool    `json:"is_vague"`
}

// SignalResult is one named soft signal rendered by the reporting layer.
type SignalResult struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label,omitempty"`
	Detail string  `json:"detail,omitempty"`
}

// ScoringResult is the full outcome of scoring one session. It is computed
// once per completed session and stored verbatim; every field is plain data.
type ScoringResult struct {
	SessionID       uuid.UUID                `json:"session_id"`
	FinalScore      float64                  `json:"final_score"`
	CategoryScores  map[string]*float64      `json:"category_scores"`
	WeightsUsed     map[string]float64       `json:"weights_used"`
	DetailedScores  map[string]float64       `json:"detailed_scores"`
	Explanations    map[string]string        `json:"explanations"`
	PerPromptScores []PromptScore            `json:"per_prompt_scores"`
	ComponentScores map[string]float64       `json:"component_scores"`
	Fraud           FraudReport              `json:"fraud"`
	SoftSignals     map[string]SignalResult  `json:"soft_signals"`
	ModelReview     models.ModelReview       `json:"model_review"`
	ScoredAt        time.Time                `json:"scored_at"`
}

// CategoryScore returns the scored value for a category, nil when the
// category was not evaluated for this session.
func (r ScoringResult) CategoryScore(category string) *float64 {
	return r.CategoryScores[category]
}
