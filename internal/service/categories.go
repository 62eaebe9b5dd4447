package service

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/stat"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
	"github.com/hirelens/scoring-engine/internal/models"
)

// ScoreTaskCompletion combines the tests-passed ratio with a time-compliance
// curve. Finishing within the allotted time scores full compliance; overage
// decays the compliance score exponentially, never below zero.
func ScoreTaskCompletion(cfg config.Config, totals models.SessionTotals) dto.CategoryScore {
	ratioScore := clampFloat(totals.PassRatio(), 0, 1) * 10

	timeScore := 10.0
	limit := totals.TimeLimitSeconds()
	if limit > 0 && totals.TotalDurationSeconds > limit {
		overage := (totals.TotalDurationSeconds - limit) / limit
		timeScore = 10 * math.Exp(-1.5*overage)
	}

	score := round1(0.7*ratioScore + 0.3*timeScore)
	return dto.CategoryScore{
		Score: floatPtr(score),
		Detailed: map[string]float64{
			"tests_passed_ratio": round1(ratioScore),
			"time_compliance":    round1(timeScore),
		},
		Explanations: map[string]string{
			"tests_passed_ratio": fmt.Sprintf("%d of %d tests passed", totals.TestsPassed, totals.TestsTotal),
			"time_compliance":    timeComplianceExplanation(totals),
		},
	}
}

func timeComplianceExplanation(totals models.SessionTotals) string {
	limit := totals.TimeLimitSeconds()
	if limit <= 0 {
		return "no time limit recorded; full compliance assumed"
	}
	if totals.TotalDurationSeconds <= limit {
		return fmt.Sprintf("finished in %.0fs of the allotted %.0fs", totals.TotalDurationSeconds, limit)
	}
	return fmt.Sprintf("exceeded the allotted %.0fs by %.0fs", limit, totals.TotalDurationSeconds-limit)
}

// ScoreContextProvision measures how often prompts carried concrete context:
// code snippets, error messages, line or file references, or cue words. The
// score rises monotonically with evidence density and is zero for sessions
// without interactions.
func ScoreContextProvision(cfg config.Config, interactions []models.Interaction) dto.CategoryScore {
	if len(interactions) == 0 {
		return dto.CategoryScore{
			Score:    floatPtr(0),
			Detailed: map[string]float64{"context_rate": 0},
			Explanations: map[string]string{
				"context_rate": "no interactions recorded; nothing to evaluate",
			},
		}
	}

	withEvidence := 0
	evidenceItems := 0
	for _, rec := range interactions {
		analysis := AnalyzePrompt(cfg, rec)
		if analysis.ProvidesContext {
			withEvidence++
		}
		if rec.HasCodeSnippet {
			evidenceItems++
		}
		if rec.HasErrorMessage {
			evidenceItems++
		}
		if rec.HasLineRef {
			evidenceItems++
		}
		if rec.HasFileRef {
			evidenceItems++
		}
		evidenceItems += analysis.ContextCues
	}

	n := float64(len(interactions))
	rate := float64(withEvidence) / n
	density := float64(evidenceItems) / n

	score := round1(minFloat(10, rate*8+minFloat(2, density)))
	return dto.CategoryScore{
		Score: floatPtr(score),
		Detailed: map[string]float64{
			"context_rate":     round1(rate * 10),
			"evidence_density": round1(minFloat(10, density*5)),
		},
		Explanations: map[string]string{
			"context_rate":     fmt.Sprintf("%d of %d prompts carried concrete context", withEvidence, len(interactions)),
			"evidence_density": fmt.Sprintf("%.1f context artifacts per prompt on average", density),
		},
	}
}

// ScoreIndependence rewards holding off before the first AI prompt and
// leaving longer gaps between prompts, corrected by how efficiently tokens
// converted into passed tests. Prompting immediately scores near zero on the
// delay component; never prompting at all is full independence.
func ScoreIndependence(cfg config.Config, interactions []models.Interaction, totals models.SessionTotals) dto.CategoryScore {
	if len(interactions) == 0 {
		return dto.CategoryScore{
			Score:    floatPtr(10),
			Detailed: map[string]float64{"first_prompt_delay": 10},
			Explanations: map[string]string{
				"first_prompt_delay": "the assistant was never used",
			},
		}
	}

	limit := totals.TimeLimitSeconds()
	if limit <= 0 {
		limit = 1800
	}

	firstDelay := interactions[0].OffsetSeconds
	delayScore := minFloat(10, firstDelay/(0.25*limit)*10)

	avgGap := 0.0
	if len(interactions) > 1 {
		gaps := make([]float64, 0, len(interactions)-1)
		for _, rec := range interactions[1:] {
			gaps = append(gaps, rec.GapSeconds)
		}
		avgGap = stat.Mean(gaps, nil)
	}
	gapScore := minFloat(10, avgGap/cfg.DeliberateGapSeconds*10)

	totalTokens := 0
	for _, rec := range interactions {
		totalTokens += rec.TotalTokens()
	}
	relianceScore := tokenEfficiencyScore(totalTokens, totals.TestsPassed)

	score := round1(0.5*delayScore + 0.3*gapScore + 0.2*relianceScore)
	return dto.CategoryScore{
		Score: floatPtr(score),
		Detailed: map[string]float64{
			"first_prompt_delay": round1(delayScore),
			"prompt_spacing":     round1(gapScore),
			"ai_reliance":        round1(relianceScore),
		},
		Explanations: map[string]string{
			"first_prompt_delay": fmt.Sprintf("first prompt after %.0fs of independent work", firstDelay),
			"prompt_spacing":     fmt.Sprintf("average gap of %.0fs between prompts", avgGap),
			"ai_reliance":        fmt.Sprintf("%d tokens spent for %d passed tests", totalTokens, totals.TestsPassed),
		},
	}
}

// ScoreUtilization measures how effectively assistant responses were turned
// into progress: token spend per passed test plus test yield per prompt. A
// session that never used the assistant gets a neutral default.
func ScoreUtilization(cfg config.Config, interactions []models.Interaction, totals models.SessionTotals) dto.CategoryScore {
	totalTokens := 0
	for _, rec := range interactions {
		totalTokens += rec.TotalTokens()
	}

	if len(interactions) == 0 || totalTokens == 0 {
		return dto.CategoryScore{
			Score:    floatPtr(5),
			Detailed: map[string]float64{"token_efficiency": 5},
			Explanations: map[string]string{
				"token_efficiency": "assistant unused; neutral default applied",
			},
		}
	}

	efficiency := tokenEfficiencyScore(totalTokens, totals.TestsPassed)
	yield := minFloat(10, float64(totals.TestsPassed)/float64(len(interactions))*5)

	score := round1(0.7*efficiency + 0.3*yield)
	return dto.CategoryScore{
		Score: floatPtr(score),
		Detailed: map[string]float64{
			"token_efficiency": round1(efficiency),
			"prompt_yield":     round1(yield),
		},
		Explanations: map[string]string{
			"token_efficiency": fmt.Sprintf("%d tokens spent for %d passed tests", totalTokens, totals.TestsPassed),
			"prompt_yield":     fmt.Sprintf("%d passed tests across %d prompts", totals.TestsPassed, len(interactions)),
		},
	}
}

// ScoreCVMatch validates and passes through the CV matching payload produced
// upstream. With no payload the category is unscored and marked skipped; the
// engine never computes CV scores itself.
func ScoreCVMatch(validate *validator.Validate, cvMatch *models.CVMatchResult) dto.CategoryScore {
	if cvMatch == nil {
		return dto.CategoryScore{
			Detailed: map[string]float64{},
			Explanations: map[string]string{
				"cv_match": "skipped: no CV match data supplied for this session",
			},
		}
	}

	if err := validate.Struct(cvMatch); err != nil {
		return dto.CategoryScore{
			Detailed: map[string]float64{},
			Explanations: map[string]string{
				"cv_match": "skipped: CV match payload failed validation",
			},
		}
	}

	return dto.CategoryScore{
		Score: floatPtr(round1(cvMatch.MatchScore)),
		Detailed: map[string]float64{
			"skills_match":         round1(cvMatch.SkillsMatch),
			"experience_relevance": round1(cvMatch.ExperienceRelevance),
		},
		Explanations: map[string]string{
			"skills_match":         fmt.Sprintf("skills matched the role at %.1f/10", cvMatch.SkillsMatch),
			"experience_relevance": fmt.Sprintf("experience relevance rated %.1f/10", cvMatch.ExperienceRelevance),
		},
	}
}
