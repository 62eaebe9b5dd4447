package service

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/dto"
	"github.com/hirelens/scoring-engine/internal/models"
)

// computeHeuristics derives the named soft signals the reporting layer
// renders alongside the score. Signals are descriptive only; none of them
// feed the weighted aggregate.
func computeHeuristics(cfg config.Config, interactions []models.Interaction, totals models.SessionTotals) map[string]dto.SignalResult {
	signals := make(map[string]dto.SignalResult)

	focusRatio := 0.0
	if totals.TotalDurationSeconds > 0 {
		focusRatio = clampFloat(totals.BrowserFocusSeconds/totals.TotalDurationSeconds, 0, 1)
	}
	focusLabel := "normal"
	if focusRatio < 0.7 {
		focusLabel = "low"
	}
	signals["browser_focus_ratio"] = dto.SignalResult{
		Value:  round2(focusRatio),
		Label:  focusLabel,
		Detail: fmt.Sprintf("%.0fs focused of %.0fs total", totals.BrowserFocusSeconds, totals.TotalDurationSeconds),
	}

	switchLabel := "normal"
	if totals.TabSwitchCount > 10 {
		switchLabel = "high"
	}
	signals["tab_switch_count"] = dto.SignalResult{
		Value: float64(totals.TabSwitchCount),
		Label: switchLabel,
	}

	firstPrompt := totals.TotalDurationSeconds
	if len(interactions) > 0 {
		firstPrompt = interactions[0].OffsetSeconds
	}
	signals["time_to_first_prompt"] = dto.SignalResult{
		Value:  round1(firstPrompt),
		Label:  string(classifyDelay(cfg, firstPrompt)),
		Detail: fmt.Sprintf("first assistant prompt after %.0fs", firstPrompt),
	}

	cadence := 0.0
	if len(interactions) > 1 {
		gaps := make([]float64, 0, len(interactions)-1)
		for _, rec := range interactions[1:] {
			gaps = append(gaps, rec.GapSeconds)
		}
		cadence = stat.Mean(gaps, nil)
	}
	signals["prompt_cadence_seconds"] = dto.SignalResult{
		Value: round1(cadence),
		Label: string(classifyDelay(cfg, cadence)),
	}

	pastes := 0
	retries := 0
	tokens := 0
	for _, rec := range interactions {
		if rec.PasteDetected {
			pastes++
		}
		if rec.RetryAfterFailure {
			retries++
		}
		tokens += rec.TotalTokens()
	}

	pasteLabel := "normal"
	if pastes >= 2 {
		pasteLabel = "elevated"
	}
	signals["paste_activity"] = dto.SignalResult{
		Value: float64(pastes),
		Label: pasteLabel,
	}

	retryPressure := 0.0
	if len(interactions) > 0 {
		retryPressure = float64(retries) / float64(len(interactions))
	}
	retryLabel := "normal"
	if retryPressure >= 0.5 {
		retryLabel = "high"
	}
	signals["retry_pressure"] = dto.SignalResult{
		Value: round2(retryPressure),
		Label: retryLabel,
	}

	signals["token_footprint"] = dto.SignalResult{
		Value:  float64(tokens),
		Detail: fmt.Sprintf("%d tokens exchanged across %d prompts", tokens, len(interactions)),
	}

	return signals
}
