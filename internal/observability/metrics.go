package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	scoringRunsTotal       *prometheus.CounterVec
	scoringDurationSeconds prometheus.Histogram
	fraudFlagsTotal        *prometheus.CounterVec
	benchmarkRequestsTotal *prometheus.CounterVec
	finalScoreDistribution prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors used by the scoring
// engine.
func RegisterMetrics() {
	registerOnce.Do(func() {
		scoringRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoring_runs_total",
			Help: "Total number of session scoring runs.",
		}, []string{"fraud"})

		scoringDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scoring_duration_seconds",
			Help:    "Latency distribution for full session scoring.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		})

		fraudFlagsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoring_fraud_flags_total",
			Help: "Total number of fraud flags raised, by flag name.",
		}, []string{"flag"})

		benchmarkRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoring_benchmark_requests_total",
			Help: "Total number of benchmark computations, by availability.",
		}, []string{"available"})

		finalScoreDistribution = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scoring_final_score",
			Help:    "Distribution of final session scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		})

		prometheus.MustRegister(scoringRunsTotal, scoringDurationSeconds, fraudFlagsTotal, benchmarkRequestsTotal, finalScoreDistribution)
	})
}

// ScoringRuns exposes the counter for scoring runs.
func ScoringRuns() *prometheus.CounterVec {
	RegisterMetrics()
	return scoringRunsTotal
}

// ScoringDuration exposes the scoring latency histogram.
func ScoringDuration() prometheus.Histogram {
	RegisterMetrics()
	return scoringDurationSeconds
}

// FraudFlags exposes the counter for raised fraud flags.
func FraudFlags() *prometheus.CounterVec {
	RegisterMetrics()
	return fraudFlagsTotal
}

// BenchmarkRequests exposes the counter for benchmark computations.
func BenchmarkRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return benchmarkRequestsTotal
}

// FinalScores exposes the final score distribution histogram.
func FinalScores() prometheus.Histogram {
	RegisterMetrics()
	return finalScoreDistribution
}
