// Package types provides type definitions for structured data used throughout the resume-refiner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentKind classifies the kind of resume content being rewritten.
// Summary and skills content may draw on resume-wide evidence
// unconditionally; experience bullets are scope-checked per term.
type ContentKind string

// Content kind constants
const (
	// KindExperience is a bullet under a specific role
	KindExperience ContentKind = "experience"
	// KindSummary is a professional summary line
	KindSummary ContentKind = "summary"
	// KindSkills is a skills-section line
	KindSkills ContentKind = "skills"
)

// RewriteRequest asks for one line of resume text to be improved.
// Validated at the boundary before any planning begins.
type RewriteRequest struct {
	Text         string      `json:"text" validate:"required"`
	Kind         ContentKind `json:"kind" validate:"required,oneof=experience summary skills"`
	Issues       []IssueCode `json:"issues,omitempty" validate:"dive,oneof=no_metric too_vague too_long weak_verb passive_voice"`
	SiblingLines []string    `json:"sibling_lines,omitempty"`
	Skills       []string    `json:"skills,omitempty"`
	Tools        []string    `json:"tools,omitempty"`
	TargetRole   string      `json:"target_role,omitempty"`

	// AllowResumeEnrichment permits skills/tools evidence beyond the line itself
	AllowResumeEnrichment bool `json:"allow_resume_enrichment,omitempty"`

	// Ledger, when supplied, is used verbatim and no derivation occurs
	Ledger *EvidenceLedger `json:"ledger,omitempty"`
}

// SectionRequest asks for a whole multi-line section to be improved and
// then unified for tense and formatting.
type SectionRequest struct {
	Lines      []string    `json:"lines" validate:"required,min=1,dive,required"`
	Kind       ContentKind `json:"kind" validate:"required,oneof=experience summary skills"`
	Issues     []IssueCode `json:"issues,omitempty" validate:"dive,oneof=no_metric too_vague too_long weak_verb passive_voice"`
	Skills     []string    `json:"skills,omitempty"`
	Tools      []string    `json:"tools,omitempty"`
	TargetRole string      `json:"target_role,omitempty"`

	AllowResumeEnrichment bool `json:"allow_resume_enrichment,omitempty"`

	// Concurrency bounds the worker pool; zero means the engine default
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0"`
}
