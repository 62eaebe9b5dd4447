package dto

// BenchmarkResult compares one scored session against a historical population
// of completed sessions on the same task. Percentiles use inclusive rank:
// ties count in the candidate's favor. Available is false whenever the
// population is too small for the percentiles to mean anything.
type BenchmarkResult struct {
	Available            bool               `json:"available"`
	SampleSize           int                `json:"sample_size"`
	OverallPercentile    *float64           `json:"overall_percentile"`
	DimensionPercentiles map[string]float64 `json:"dimension_percentiles"`
	Message              string             `json:"message,omitempty"`
}
