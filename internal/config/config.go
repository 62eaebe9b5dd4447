package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// weightSumTolerance bounds the floating-point drift allowed when checking
// that category weights sum to one.
const weightSumTolerance = 1e-9

// Weights holds the relative importance of each scoring category. The values
// are the legacy business constants; deployments may override them through
// the environment but they must always sum to 1.0.
type Weights struct {
	TaskCompletion   float64 `mapstructure:"task_completion" validate:"gte=0,lte=1"`
	PromptClarity    float64 `mapstructure:"prompt_clarity" validate:"gte=0,lte=1"`
	ContextProvision float64 `mapstructure:"context_provision" validate:"gte=0,lte=1"`
	Independence     float64 `mapstructure:"independence" validate:"gte=0,lte=1"`
	Utilization      float64 `mapstructure:"utilization" validate:"gte=0,lte=1"`
	Communication    float64 `mapstructure:"communication" validate:"gte=0,lte=1"`
	Approach         float64 `mapstructure:"approach" validate:"gte=0,lte=1"`
	CVMatch          float64 `mapstructure:"cv_match" validate:"gte=0,lte=1"`
}

// Map returns the weights keyed by category name.
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"task_completion":   w.TaskCompletion,
		"prompt_clarity":    w.PromptClarity,
		"context_provision": w.ContextProvision,
		"independence":      w.Independence,
		"utilization":       w.Utilization,
		"communication":     w.Communication,
		"approach":          w.Approach,
		"cv_match":          w.CVMatch,
	}
}

// Sum returns the total of all category weights.
func (w Weights) Sum() float64 {
	total := 0.0
	for _, weight := range w.Map() {
		total += weight
	}
	return total
}

// Config holds the immutable scoring constants: category weights, fraud and
// benchmark policy values, and the heuristic thresholds. A Config value is
// passed into the services at construction and never mutated afterwards.
type Config struct {
	Weights Weights

	// FraudScoreCap is the ceiling applied to the final score when a
	// high-severity fraud flag is present.
	FraudScoreCap float64 `validate:"gte=0,lte=100"`

	// BenchmarkMinSample is the smallest historical population for which
	// percentile benchmarks are reported.
	BenchmarkMinSample int `validate:"gt=0"`

	// ShortPromptWords is the word count at or below which a prompt is
	// considered vague.
	ShortPromptWords int `validate:"gt=0"`

	// RushedGapSeconds and DeliberateGapSeconds bound the timing bands used
	// for inter-prompt pacing classification.
	RushedGapSeconds     float64 `validate:"gt=0"`
	DeliberateGapSeconds float64 `validate:"gt=0"`

	// PasteLengthFloor is the minimum pasted-character count that counts
	// toward the external-paste fraud signal.
	PasteLengthFloor int `validate:"gt=0"`

	// SolutionDumpLines is the added-line count at which a single code diff
	// looks like a whole-file replace.
	SolutionDumpLines int `validate:"gt=0"`

	// SuspiciousPassSeconds is the session duration floor under which a full
	// test pass is flagged as implausibly fast.
	SuspiciousPassSeconds float64 `validate:"gt=0"`
}

// Default returns the legacy scoring constants used in production.
func Default() Config {
	return Config{
		Weights: Weights{
			TaskCompletion:   0.30,
			PromptClarity:    0.10,
			ContextProvision: 0.10,
			Independence:     0.125,
			Utilization:      0.075,
			Communication:    0.10,
			Approach:         0.10,
			CVMatch:          0.10,
		},
		FraudScoreCap:         50.0,
		BenchmarkMinSample:    20,
		ShortPromptWords:      4,
		RushedGapSeconds:      20,
		DeliberateGapSeconds:  180,
		PasteLengthFloor:      200,
		SolutionDumpLines:     150,
		SuspiciousPassSeconds: 300,
	}
}

// Validate checks field ranges and the weight-sum invariant.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	if err := validate.Struct(c.Weights); err != nil {
		return fmt.Errorf("invalid category weights: %w", err)
	}
	if math.Abs(c.Weights.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("category weights must sum to 1.0, got %v", c.Weights.Sum())
	}
	if c.RushedGapSeconds >= c.DeliberateGapSeconds {
		return fmt.Errorf("rushed gap threshold must be below deliberate gap threshold")
	}
	return nil
}

// Load reads scoring configuration from environment variables and an optional
// .env file, starting from the production defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SCORING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := Default()
	v.SetDefault("weight.task_completion", defaults.Weights.TaskCompletion)
	v.SetDefault("weight.prompt_clarity", defaults.Weights.PromptClarity)
	v.SetDefault("weight.context_provision", defaults.Weights.ContextProvision)
	v.SetDefault("weight.independence", defaults.Weights.Independence)
	v.SetDefault("weight.utilization", defaults.Weights.Utilization)
	v.SetDefault("weight.communication", defaults.Weights.Communication)
	v.SetDefault("weight.approach", defaults.Weights.Approach)
	v.SetDefault("weight.cv_match", defaults.Weights.CVMatch)
	v.SetDefault("fraud.score_cap", defaults.FraudScoreCap)
	v.SetDefault("benchmark.min_sample", defaults.BenchmarkMinSample)
	v.SetDefault("heuristics.short_prompt_words", defaults.ShortPromptWords)
	v.SetDefault("heuristics.rushed_gap_seconds", defaults.RushedGapSeconds)
	v.SetDefault("heuristics.deliberate_gap_seconds", defaults.DeliberateGapSeconds)
	v.SetDefault("fraud.paste_length_floor", defaults.PasteLengthFloor)
	v.SetDefault("fraud.solution_dump_lines", defaults.SolutionDumpLines)
	v.SetDefault("fraud.suspicious_pass_seconds", defaults.SuspiciousPassSeconds)

	cfg := Config{
		Weights: Weights{
			TaskCompletion:   v.GetFloat64("weight.task_completion"),
			PromptClarity:    v.GetFloat64("weight.prompt_clarity"),
			ContextProvision: v.GetFloat64("weight.context_provision"),
			Independence:     v.GetFloat64("weight.independence"),
			Utilization:      v.GetFloat64("weight.utilization"),
			Communication:    v.GetFloat64("weight.communication"),
			Approach:         v.GetFloat64("weight.approach"),
			CVMatch:          v.GetFloat64("weight.cv_match"),
		},
		FraudScoreCap:         v.GetFloat64("fraud.score_cap"),
		BenchmarkMinSample:    v.GetInt("benchmark.min_sample"),
		ShortPromptWords:      v.GetInt("heuristics.short_prompt_words"),
		RushedGapSeconds:      v.GetFloat64("heuristics.rushed_gap_seconds"),
		DeliberateGapSeconds:  v.GetFloat64("heuristics.deliberate_gap_seconds"),
		PasteLengthFloor:      v.GetInt("fraud.paste_length_floor"),
		SolutionDumpLines:     v.GetInt("fraud.solution_dump_lines"),
		SuspiciousPassSeconds: v.GetFloat64("fraud.suspicious_pass_seconds"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
