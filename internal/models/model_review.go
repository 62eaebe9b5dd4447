package models

// ModelReviewState enumerates the states of the model-based review track.
type ModelReviewState string

const (
	// ModelReviewDisabled marks the model-based track as switched off. The
	// heuristic pipeline is authoritative and no model verdict exists.
	ModelReviewDisabled ModelReviewState = "disabled"
	// ModelReviewEnabled marks a populated model verdict. The scoring engine
	// never produces this state itself; it exists so stored results from a
	// future rollout remain distinguishable from the disabled stub.
	ModelReviewEnabled ModelReviewState = "enabled"
)

// ModelReview is the explicit variant type for the model-based review track.
// Callers check State before reading Score so a disabled stub can never be
// mistaken for a real null verdict.
type ModelReview struct {
	State    ModelReviewState `json:"state"`
	Score    *float64         `json:"score,omitempty"`
	Feedback string           `json:"feedback,omitempty"`
}

// DisabledModelReview returns the stub variant for the switched-off track.
func DisabledModelReview() ModelReview {
	return ModelReview{State: ModelReviewDisabled}
}

// Enabled reports whether the review carries a real model verdict.
func (r ModelReview) Enabled() bool {
	return r.State == ModelReviewEnabled && r.Score != nil
}
