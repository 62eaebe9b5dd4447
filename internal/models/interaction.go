package models

import (
	"strings"
	"time"
)

// Interaction represents one candidate prompt and assistant exchange, together
// with the telemetry the session runtime captured around it. Records are
// immutable once produced; the scoring engine only ever reads them. Optional
// telemetry that was not captured is left at its zero value.
type Interaction struct {
	Message   string `json:"message"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`

	HasCodeSnippet  bool `json:"has_code_snippet"`
	HasErrorMessage bool `json:"has_error_message"`
	HasLineRef      bool `json:"has_line_ref"`
	HasFileRef      bool `json:"has_file_ref"`

	PasteDetected bool `json:"paste_detected"`
	PasteLength   int  `json:"paste_length"`

	CodeBefore   string `json:"code_before"`
	CodeAfter    string `json:"code_after"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`

	// OffsetSeconds is measured from assessment start, GapSeconds from the
	// previous prompt (zero for the first prompt).
	OffsetSeconds float64   `json:"offset_seconds"`
	GapSeconds    float64   `json:"gap_seconds"`
	Timestamp     time.Time `json:"timestamp"`

	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	ReferencesPrevious bool `json:"references_previous"`
	RetryAfterFailure  bool `json:"retry_after_failure"`
}

// Words returns the recorded word count, falling back to counting the message
// text when the runtime did not populate the counter.
func (i Interaction) Words() int {
	if i.WordCount > 0 {
		return i.WordCount
	}
	return len(strings.Fields(i.Message))
}

// TotalTokens returns the combined input and output token count.
func (i Interaction) TotalTokens() int {
	return i.InputTokens + i.OutputTokens
}

// HasContextEvidence reports whether the prompt carried any concrete context
// artifact (code, error text, or a line/file reference).
func (i Interaction) HasContextEvidence() bool {
	return i.HasCodeSnippet || i.HasErrorMessage || i.HasLineRef || i.HasFileRef
}
