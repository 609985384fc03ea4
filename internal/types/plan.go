// Package types provides type definitions for structured data used throughout the resume-refiner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ActionType identifies one bounded transformation hint given to the generator
type ActionType string

// Micro-action type constants
const (
	// ActionVerbUpgrade replaces a weak leading verb with a stronger one
	ActionVerbUpgrade ActionType = "verb_upgrade"
	// ActionRemoveFluff deletes or substitutes low-information phrases
	ActionRemoveFluff ActionType = "remove_fluff"
	// ActionAddHow asks for the mechanism behind a claim, never a new number
	ActionAddHow ActionType = "add_how"
	// ActionSurfaceTool surfaces a permitted resume-wide tool into the line
	ActionSurfaceTool ActionType = "surface_tool"
	// ActionTenseAlign aligns the line's tense with its section
	ActionTenseAlign ActionType = "tense_align"
	// ActionAddSpecificity asks for more concrete phrasing
	ActionAddSpecificity ActionType = "add_specificity"
)

// FluffMatch is a single fluff phrase detected in the original text
type FluffMatch struct {
	Phrase      string `json:"phrase"`
	Category    string `json:"category"`
	Replacement string `json:"replacement,omitempty"` // empty means delete
	Start       int    `json:"start"`
}

// MicroAction is a tagged union over action types. Type determines which
// payload fields are meaningful.
type MicroAction struct {
	Type ActionType `json:"type"`

	// verb_upgrade payload
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Context string `json:"context,omitempty"`

	// remove_fluff payload
	Phrases []FluffMatch `json:"phrases,omitempty"`

	// surface_tool payload
	Term       string `json:"term,omitempty"`
	EvidenceID string `json:"evidence_id,omitempty"`

	// add_how / add_specificity / tense_align payload
	Hint string `json:"hint,omitempty"`
}

// RewriteGoal is the single dominant objective inferred for a rewrite
type RewriteGoal string

// Rewrite goal constants
const (
	// GoalImpact emphasizes outcomes and strength of claims
	GoalImpact RewriteGoal = "impact"
	// GoalClarity emphasizes concrete, unambiguous phrasing
	GoalClarity RewriteGoal = "clarity"
	// GoalConciseness emphasizes brevity
	GoalConciseness RewriteGoal = "conciseness"
)

// IssueCode is a caller-declared weakness in the original text
type IssueCode string

// Issue code constants
const (
	// IssueNoMetric means the line carries no quantified impact
	IssueNoMetric IssueCode = "no_metric"
	// IssueTooVague means the line is unspecific
	IssueTooVague IssueCode = "too_vague"
	// IssueTooLong means the line exceeds the target length
	IssueTooLong IssueCode = "too_long"
	// IssueWeakVerb means the line opens with a weak verb
	IssueWeakVerb IssueCode = "weak_verb"
	// IssuePassiveVoice means the line uses passive constructions
	IssuePassiveVoice IssueCode = "passive_voice"
)

// Constraints are the hard limits the generator must respect
type Constraints struct {
	MaxLength          int  `json:"max_length"`
	ForbidNewNumbers   bool `json:"forbid_new_numbers"`
	ForbidNewTools     bool `json:"forbid_new_tools"`
	ForbidNewCompanies bool `json:"forbid_new_companies"`
}

// UserPrompt is an open question that requires a user decision before a
// term may be used, rather than silently assuming either way
type UserPrompt struct {
	Question string `json:"question"`
	Term     string `json:"term,omitempty"`
	Kind     string `json:"kind"` // currently always "yes_no"
}

// RewritePlan is the ordered, bounded list of transformations for one
// rewrite request. Plans are produced once and reused verbatim on retries;
// only the prompt wrapper changes between attempts.
type RewritePlan struct {
	Goal            RewriteGoal   `json:"goal"`
	Issues          []IssueCode   `json:"issues,omitempty"`
	Transformations []MicroAction `json:"transformations"`
	Constraints     Constraints   `json:"constraints"`
	NeedsUserInput  []UserPrompt  `json:"needs_user_input,omitempty"`
}
