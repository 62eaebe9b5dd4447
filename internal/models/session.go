package models

// SessionTotals carries the aggregate telemetry for one completed (or
// timed-out) assessment session. The session runtime extracts these values
// before handing them to the scoring engine; zero values are valid and mean
// the corresponding signal was not captured.
type SessionTotals struct {
	TestsPassed          int     `json:"tests_passed"`
	TestsTotal           int     `json:"tests_total"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	TimeLimitMinutes     int     `json:"time_limit_minutes"`

	BrowserFocusSeconds float64 `json:"browser_focus_seconds"`
	TabSwitchCount      int     `json:"tab_switch_count"`
}

// PassRatio returns the fraction of tests passed, zero when no tests ran.
func (s SessionTotals) PassRatio() float64 {
	if s.TestsTotal <= 0 {
		return 0
	}
	return float64(s.TestsPassed) / float64(s.TestsTotal)
}

// TimeLimitSeconds returns the allotted duration in seconds.
func (s SessionTotals) TimeLimitSeconds() float64 {
	return float64(s.TimeLimitMinutes) * 60
}

// FullPass reports whether every test passed.
func (s SessionTotals) FullPass() bool {
	return s.TestsTotal > 0 && s.TestsPassed >= s.TestsTotal
}
