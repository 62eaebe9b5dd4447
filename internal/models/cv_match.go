package models

// CVMatchResult is the CV-to-role matching payload produced by the candidate
// profile pipeline. The scoring engine validates and passes it through; it
// never computes these values itself. A nil pointer means the session was run
// without CV matching and the category stays unscored.
type CVMatchResult struct {
	MatchScore          float64 `json:"match_score" validate:"gte=0,lte=10"`
	SkillsMatch         float64 `json:"skills_match" validate:"gte=0,lte=10"`
	ExperienceRelevance float64 `json:"experience_relevance" validate:"gte=0,lte=10"`
	Summary             string  `json:"summary"`
}
