package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirelens/scoring-engine/internal/config"
	"github.com/hirelens/scoring-engine/internal/models"
)

func TestScorePromptClarityVagueSession(t *testing.T) {
	interactions := []models.Interaction{
		vagueInteraction("help"),
		vagueInteraction("fix"),
		vagueInteraction("not working"),
	}

	result := ScorePromptClarity(config.Default(), interactions)

	require.NotNil(t, result.Score)
	require.Less(t, result.Detailed["vagueness_score"], 5.0)
	require.Equal(t, 10.0, result.Detailed["vague_prompt_ratio"])
}

func TestScorePromptClarityEmptyDefault(t *testing.T) {
	result := ScorePromptClarity(config.Default(), nil)

	require.NotNil(t, result.Score)
	require.Equal(t, 5.0, *result.Score)
	require.NotEmpty(t, result.Explanations["vagueness_score"])
}

func TestScorePromptClarityWellFormedBeatsVague(t *testing.T) {
	vague := ScorePromptClarity(config.Default(), []models.Interaction{vagueInteraction("fix")})
	clear := ScorePromptClarity(config.Default(), []models.Interaction{
		richInteraction(600, 0, "The integration test fails with a timeout because the retry loop never backs off; how should I restructure it?"),
	})

	require.Greater(t, *clear.Score, *vague.Score)
}

func TestScoreCommunicationSeparateSubScores(t *testing.T) {
	result := ScoreCommunication(config.Default(), []models.Interaction{
		{Message: "Could you explain why the allocator fails here? The trace is attached."},
	})

	require.NotNil(t, result.Score)
	require.Contains(t, result.Detailed, "grammar_score")
	require.Contains(t, result.Detailed, "readability_score")
	require.NotEmpty(t, result.Explanations["grammar_score"])
	require.NotEmpty(t, result.Explanations["readability_score"])
	require.NotEqual(t, result.Explanations["grammar_score"], result.Explanations["readability_score"])
}

func TestScoreCommunicationPenalizesSlangAndRunOns(t *testing.T) {
	clean := ScoreCommunication(config.Default(), []models.Interaction{
		{Message: "The build fails on the second stage. Could you check the linker flags?"},
	})
	sloppy := ScoreCommunication(config.Default(), []models.Interaction{
		{Message: "hey can you plz just look at this thing its broke and i dont get why it keeps doing that weird stuff every single time i run it on my machine with the flags and the env vars and everything else"},
	})

	require.Greater(t, clean.Detailed["grammar_score"], sloppy.Detailed["grammar_score"])
}

func TestScoreCommunicationEmptyDefault(t *testing.T) {
	result := ScoreCommunication(config.Default(), nil)

	require.NotNil(t, result.Score)
	require.Equal(t, 5.0, *result.Score)
}

func TestScoreApproachIndependentSubScores(t *testing.T) {
	debugOnly := ScoreApproach(config.Default(), []models.Interaction{
		{Message: "My hypothesis is the cache is stale; I added a print statement to reproduce the failure."},
	})
	designOnly := ScoreApproach(config.Default(), []models.Interaction{
		{Message: "What is the tradeoff between a modular design and handling every edge case inline?"},
	})

	require.Greater(t, debugOnly.Detailed["debugging_mindset"], 0.0)
	require.Equal(t, 0.0, debugOnly.Detailed["design_thinking"])

	require.Greater(t, designOnly.Detailed["design_thinking"], 0.0)
	require.Equal(t, 0.0, designOnly.Detailed["debugging_mindset"])
}

func TestScoreApproachEmpty(t *testing.T) {
	result := ScoreApproach(config.Default(), nil)

	require.NotNil(t, result.Score)
	require.Equal(t, 0.0, *result.Score)
	require.NotEmpty(t, result.Explanations["debugging_mindset"])
}
