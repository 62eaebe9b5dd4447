package service

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newTestScoringService() ScoringService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewScoringService(config.Default(), validate, testLogger())
}

// richInteraction builds a well-formed, context-heavy prompt record for the
// happy-path scenarios.
func richInteraction(offset, gap float64, message string) models.Interaction {
	return models.Interaction{
		Message:         message,
		HasCodeSnippet:  true,
		HasErrorMessage: true,
		HasLineRef:      true,
		HasFileRef:      true,
		OffsetSeconds:   offset,
		GapSeconds:      gap,
		Timestamp:       time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		InputTokens:     200,
		OutputTokens:    200,
	}
}

func vagueInteraction(message string) models.Interaction {
	return models.Interaction{Message: message}
}
