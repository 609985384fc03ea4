// Package types provides type definitions for structured data used throughout the resume-refiner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EvidenceType classifies where an evidence item came from
type EvidenceType string

// Evidence type constants
const (
	// EvidenceLine is the line under edit itself
	EvidenceLine EvidenceType = "line"
	// EvidenceSiblingLines are other lines from the same role/section
	EvidenceSiblingLines EvidenceType = "sibling_lines"
	// EvidenceSkills is the aggregate of resume-wide skills
	EvidenceSkills EvidenceType = "skills"
	// EvidenceTools is the aggregate of resume-wide tools
	EvidenceTools EvidenceType = "tools"
	// EvidenceTitles is the aggregate of job titles held
	EvidenceTitles EvidenceType = "titles"
)

// EvidenceScope defines where an evidence item may legitimately be used
type EvidenceScope string

// Evidence scope constants, ordered from narrowest to widest
const (
	// ScopeLineOnly restricts evidence to the line it came from
	ScopeLineOnly EvidenceScope = "line_only"
	// ScopeSection allows evidence within the same section
	ScopeSection EvidenceScope = "section"
	// ScopeResume allows evidence anywhere in the resume
	ScopeResume EvidenceScope = "resume"
)

// EvidenceItem is a single fact legitimately usable in a rewrite.
// Items are immutable once built: the ledger for a request is fixed
// and never regenerated across retry attempts.
type EvidenceItem struct {
	ID              string        `json:"id"`
	Type            EvidenceType  `json:"type"`
	Scope           EvidenceScope `json:"scope"`
	Source          string        `json:"source"`
	Text            string        `json:"text"`
	NormalizedTerms []string      `json:"normalized_terms,omitempty"`
}

// EvidenceLedger is the complete set of evidence available for one rewrite request
type EvidenceLedger struct {
	Items                 []EvidenceItem `json:"items"`
	Scope                 EvidenceScope  `json:"scope"`
	AllowResumeEnrichment bool           `json:"allow_resume_enrichment"`
}

// Item returns the evidence item with the given ID, if present
func (l *EvidenceLedger) Item(id string) (*EvidenceItem, bool) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i], true
		}
	}
	return nil, false
}

// HasItem reports whether an evidence item with the given ID exists
func (l *EvidenceLedger) HasItem(id string) bool {
	_, ok := l.Item(id)
	return ok
}

// Texts returns the raw text of every evidence item, in ledger order
func (l *EvidenceLedger) Texts() []string {
	texts := make([]string, 0, len(l.Items))
	for i := range l.Items {
		texts = append(texts, l.Items[i].Text)
	}
	return texts
}

// NormalizedTerms returns the union of normalized terms across all items
func (l *EvidenceLedger) NormalizedTerms() []string {
	seen := make(map[string]bool)
	var terms []string
	for i := range l.Items {
		for _, term := range l.Items[i].NormalizedTerms {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}
	return terms
}

// EvidenceMapItem is a claim by the generator that a specific substring of
// the candidate text is backed by specific evidence IDs. Claims are treated
// as untrusted hints; the validator independently re-derives facts.
type EvidenceMapItem struct {
	ImprovedSpan string   `json:"improved_span"`
	EvidenceIDs  []string `json:"evidence_ids"`
}
