package dto

// Fraud flag vocabulary. Flags are appended in this order; each flag is
// independently reproducible from the inputs that raised it.
const (
	FlagExternalPaste    = "external_paste_detected"
	FlagSolutionDump     = "solution_dump_detected"
	FlagInjectionAttempt = "injection_attempt"
	FlagSuspiciouslyFast = "suspiciously_fast"
)

// FraudReport carries the fraud flags raised for a session plus the numeric
// evidence behind the strongest signals. A clean session has an empty,
// non-nil Flags slice.
type FraudReport struct {
	Flags                 []string `json:"flags"`
	PasteRatio            float64  `json:"paste_ratio"`
	ExternalPasteDetected bool     `json:"external_paste_detected"`
	InjectionAttempt      bool     `json:"injection_attempt"`
}

// HasFlag reports whether the named flag was raised.
func (f FraudReport) HasFlag(name string) bool {
	for _, flag := range f.Flags {
		if flag == name {
			return true
		}
	}
	return false
}

// Clean reports whether no fraud signal fired.
func (f FraudReport) Clean() bool {
	return len(f.Flags) == 0
}
