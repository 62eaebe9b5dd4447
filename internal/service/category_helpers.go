package service

import "math"

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func floatPtr(v float64) *float64 {
	return &v
}

// tokenEfficiencyScore bands total token spend per passed test into a 0-10
// score. Spending fewer tokens per unit of progress scores higher; with no
// progress the score depends only on whether tokens were burned at all.
func tokenEfficiencyScore(totalTokens, testsPassed int) float64 {
	if testsPassed <= 0 {
		if totalTokens > 0 {
			return 2
		}
		return 5
	}
	perPass := float64(totalTokens) / float64(testsPassed)
	switch {
	case perPass <= 500:
		return 10
	case perPass <= 1500:
		return 8
	case perPass <= 4000:
		return 6
	case perPass <= 8000:
		return 4
	case perPass <= 16000:
		return 2
	default:
		return 1
	}
}
