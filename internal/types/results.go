// Package types provides type definitions for structured data used throughout the resume-refiner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Confidence expresses how much trust the engine places in a result
type Confidence string

// Confidence constants
const (
	// ConfidenceHigh means accepted on the first attempt with zero warnings
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means accepted after retries or with warnings
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means the engine fell back to the original text
	ConfidenceLow Confidence = "low"
)

// ChangeFlags are the generator's self-reported quality changes,
// recomputed from the accepted text before being returned
type ChangeFlags struct {
	StrongerVerb   bool `json:"stronger_verb"`
	AddedMetric    bool `json:"added_metric"`
	MoreSpecific   bool `json:"more_specific"`
	RemovedFluff   bool `json:"removed_fluff"`
	TailoredToRole bool `json:"tailored_to_role"`
}

// RewriteResult is the terminal object for one improved line.
// Never mutated after construction.
type RewriteResult struct {
	RequestID string `json:"request_id"`
	Original  string `json:"original"`
	Improved  string `json:"improved"`
	Reasoning string `json:"reasoning"`

	Changes     ChangeFlags       `json:"changes"`
	EvidenceMap []EvidenceMapItem `json:"evidence_map"`
	Validation  ValidationResult  `json:"validation"`
	Confidence  Confidence        `json:"confidence"`

	// Attempts counts generation calls consumed, including the accepted one
	Attempts int `json:"attempts"`
	// FellBack marks that the original text was returned unchanged
	FellBack bool `json:"fell_back"`
	// EstimatedScoreGain is zero whenever FellBack is true
	EstimatedScoreGain float64 `json:"estimated_score_gain"`

	// NeedsUserInput carries unresolved confirmation prompts from planning
	NeedsUserInput []UserPrompt `json:"needs_user_input,omitempty"`
}

// SectionResult is the terminal object for a whole improved section,
// carrying per-line detail plus the aggregate coherence notes.
type SectionResult struct {
	RequestID string          `json:"request_id"`
	Lines     []RewriteResult `json:"lines"`

	DominantTense   string   `json:"dominant_tense"`
	TenseConfidence string   `json:"tense_confidence"`
	Notes           []string `json:"notes,omitempty"`
}
