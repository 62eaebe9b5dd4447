package service

import (
	"strings"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/models"
)

// PacingBand classifies how much time a candidate left around a prompt.
type PacingBand string

const (
	PacingRushed     PacingBand = "rushed"
	PacingNormal     PacingBand = "normal"
	PacingDeliberate PacingBand = "deliberate"
)

// contextCueWords is the fixed vocabulary whose presence indicates the
// candidate supplied genuine problem context rather than a bare request.
var contextCueWords = []string{
	"architecture",
	"because",
	"complexity",
	"constraint",
	"dependency",
	"design",
	"edge case",
	"expected",
	"interface",
	"performance",
	"refactor",
	"requirement",
	"structure",
	"tradeoff",
}

// PromptAnalysis carries the per-prompt signals derived from one interaction.
// Category scorers and the fraud detector reuse these rather than re-deriving
// them from the raw record.
type PromptAnalysis struct {
	ClarityScore    float64
	IsVague         bool
	Words           int
	ContextCues     int
	ProvidesContext bool
	StartPacing     PacingBand
	GapPacing       PacingBand
}

// AnalyzePrompt derives the heuristic signals for a single interaction. It is
// a pure function of the record: missing telemetry is treated as absent, and
// clarity is monotonic in information content, so a longer well-formed prompt
// never scores below a shorter vague one.
func AnalyzePrompt(cfg config.Config, rec models.Interaction) PromptAnalysis {
	words := rec.Words()
	cues := countContextCues(rec.Message)
	providesContext := rec.HasContextEvidence() || cues > 0

	clarity := minFloat(6, float64(words)*0.4)
	if rec.HasErrorMessage {
		clarity += 1
	}
	if rec.HasCodeSnippet {
		clarity += 1
	}
	if rec.HasLineRef {
		clarity += 0.5
	}
	if rec.HasFileRef {
		clarity += 0.5
	}
	clarity += minFloat(1.5, 0.5*float64(cues))
	clarity = clampFloat(clarity, 0, 10)

	return PromptAnalysis{
		ClarityScore:    round1(clarity),
		IsVague:         words <= cfg.ShortPromptWords && !providesContext,
		Words:           words,
		ContextCues:     cues,
		ProvidesContext: providesContext,
		StartPacing:     classifyDelay(cfg, rec.OffsetSeconds),
		GapPacing:       classifyDelay(cfg, rec.GapSeconds),
	}
}

// classifyDelay buckets a delay into the fixed pacing bands.
func classifyDelay(cfg config.Config, seconds float64) PacingBand {
	switch {
	case seconds < cfg.RushedGapSeconds:
		return PacingRushed
	case seconds > cfg.DeliberateGapSeconds:
		return PacingDeliberate
	default:
		return PacingNormal
	}
}

func countContextCues(message string) int {
	if message == "" {
		return 0
	}
	lowered := strings.ToLower(message)
	count := 0
	for _, cue := range contextCueWords {
		if strings.Contains(lowered, cue) {
			count++
		}
	}
	return count
}
