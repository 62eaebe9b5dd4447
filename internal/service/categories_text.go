package service

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
	"github.com/hirelens/scoring-engine/internal/models"
)

var slangMarkers = []string{
	" plz", "pls ", " thx", " u r ", " ur ", "gonna", "wanna", "dunno", "kinda", " idk", " lol",
}

var debuggingTerms = []string{
	"breakpoint",
	"experiment",
	"hypothesis",
	"isolate",
	"log statement",
	"narrow down",
	"print statement",
	"reproduce",
	"stack trace",
	"step through",
}

var designTerms = []string{
	"abstraction",
	"decouple",
	"edge case",
	"maintainab",
	"modular",
	"scalab",
	"separation of concerns",
	"single responsibility",
	"tradeoff",
	"trade-off",
}

// ScorePromptClarity aggregates the per-prompt clarity signal. An empty
// transcript yields a neutral default rather than an error.
func ScorePromptClarity(cfg config.Config, interactions []models.Interaction) dto.CategoryScore {
	if len(interactions) == 0 {
		return dto.CategoryScore{
			Score:    floatPtr(5),
			Detailed: map[string]float64{"vagueness_score": 5},
			Explanations: map[string]string{
				"vagueness_score": "no prompts submitted; neutral default applied",
			},
		}
	}

	clarities := make([]float64, 0, len(interactions))
	vague := 0
	for _, rec := range interactions {
		analysis := AnalyzePrompt(cfg, rec)
		clarities = append(clarities, analysis.ClarityScore)
		if analysis.IsVague {
			vague++
		}
	}

	avg := stat.Mean(clarities, nil)
	vagueRatio := float64(vague) / float64(len(interactions))

	return dto.CategoryScore{
		Score: floatPtr(round1(avg)),
		Detailed: map[string]float64{
			"vagueness_score":    round1(avg),
			"vague_prompt_ratio": round1(vagueRatio * 10),
		},
		Explanations: map[string]string{
			"vagueness_score":    fmt.Sprintf("average prompt clarity of %.1f/10", avg),
			"vague_prompt_ratio": fmt.Sprintf("%d of %d prompts were vague", vague, len(interactions)),
		},
	}
}

// ScoreCommunication applies grammar and readability heuristics to the prompt
// text. The two sub-scores are reported and explained separately.
func ScoreCommunication(cfg config.Config, interactions []models.Interaction) dto.CategoryScore {
	if len(interactions) == 0 {
		return dto.CategoryScore{
			Score: floatPtr(5),
			Detailed: map[string]float64{
				"grammar_score":     5,
				"readability_score": 5,
			},
			Explanations: map[string]string{
				"grammar_score":     "no prompts submitted; neutral default applied",
				"readability_score": "no prompts submitted; neutral default applied",
			},
		}
	}

	grammarScores := make([]float64, 0, len(interactions))
	readabilityScores := make([]float64, 0, len(interactions))
	for _, rec := range interactions {
		grammarScores = append(grammarScores, grammarScore(rec))
		readabilityScores = append(readabilityScores, readabilityScore(rec))
	}

	grammar := stat.Mean(grammarScores, nil)
	readability := stat.Mean(readabilityScores, nil)
	score := round1((grammar + readability) / 2)

	return dto.CategoryScore{
		Score: floatPtr(score),
		Detailed: map[string]float64{
			"grammar_score":     round1(grammar),
			"readability_score": round1(readability),
		},
		Explanations: map[string]string{
			"grammar_score":     fmt.Sprintf("grammar quality averaged %.1f/10 across prompts", grammar),
			"readability_score": fmt.Sprintf("readability averaged %.1f/10 across prompts", readability),
		},
	}
}

func grammarScore(rec models.Interaction) float64 {
	score := 10.0
	words := rec.Words()
	lowered := " " + strings.ToLower(rec.Message)

	for _, marker := range slangMarkers {
		if strings.Contains(lowered, marker) {
			score -= 2
			break
		}
	}
	if words > 40 && !strings.ContainsAny(rec.Message, ".!?;") {
		score -= 3
	}
	if words >= 8 && !strings.HasSuffix(strings.TrimSpace(rec.Message), ".") &&
		!strings.HasSuffix(strings.TrimSpace(rec.Message), "?") &&
		!strings.HasSuffix(strings.TrimSpace(rec.Message), "!") {
		score -= 1
	}

	return clampFloat(score, 0, 10)
}

func readabilityScore(rec models.Interaction) float64 {
	words := rec.Words()
	if words == 0 {
		return 0
	}

	sentences := 0
	for _, r := range rec.Message {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	perSentence := float64(words) / float64(sentences)
	score := 10.0
	switch {
	case perSentence < 8:
		score = 10 - (8-perSentence)*0.5
	case perSentence > 25:
		score = 10 - (perSentence-25)*0.25
	}

	return clampFloat(score, 0, 10)
}

// ScoreApproach detects debugging-oriented and design-oriented language as
// two independent sub-scores; a session can do well on either alone.
func ScoreApproach(cfg config.Config, interactions []models.Interaction) dto.CategoryScore {
	if len(interactions) == 0 {
		return dto.CategoryScore{
			Score: floatPtr(0),
			Detailed: map[string]float64{
				"debugging_mindset": 0,
				"design_thinking":   0,
			},
			Explanations: map[string]string{
				"debugging_mindset": "no prompts to analyze",
				"design_thinking":   "no prompts to analyze",
			},
		}
	}

	debugPrompts, debugHits := vocabularyHits(interactions, debuggingTerms)
	designPrompts, designHits := vocabularyHits(interactions, designTerms)

	n := float64(len(interactions))
	debugScore := clampFloat(float64(debugPrompts)/n*10+minFloat(2, 0.25*float64(debugHits)), 0, 10)
	designScore := clampFloat(float64(designPrompts)/n*10+minFloat(2, 0.25*float64(designHits)), 0, 10)

	return dto.CategoryScore{
		Score: floatPtr(round1((debugScore + designScore) / 2)),
		Detailed: map[string]float64{
			"debugging_mindset": round1(debugScore),
			"design_thinking":   round1(designScore),
		},
		Explanations: map[string]string{
			"debugging_mindset": fmt.Sprintf("debugging language found in %d of %d prompts", debugPrompts, len(interactions)),
			"design_thinking":   fmt.Sprintf("design language found in %d of %d prompts", designPrompts, len(interactions)),
		},
	}
}

// vocabularyHits returns how many prompts contain at least one term from the
// vocabulary and the total number of term hits across all prompts.
func vocabularyHits(interactions []models.Interaction, vocabulary []string) (prompts int, hits int) {
	for _, rec := range interactions {
		lowered := strings.ToLower(rec.Message)
		found := 0
		for _, term := range vocabulary {
			if strings.Contains(lowered, term) {
				found++
			}
		}
		if found > 0 {
			prompts++
		}
		hits += found
	}
	return prompts, hits
}
