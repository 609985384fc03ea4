// Package evidence builds the scoped, identified evidence ledger for one
// rewrite request. The ledger is constructed once per request and is
// read-only afterward; retries never regenerate it.
package evidence

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-refiner/internal/types"
)

// Reserved evidence item IDs. The edited line is always MainLineID.
const (
	MainLineID = "E1"
	SkillsID   = "E_skills"
	ToolsID    = "E_tools"
	TitlesID   = "E_titles"
)

// Request carries everything the builder may draw evidence from
type Request struct {
	Text         string
	Kind         types.ContentKind
	SiblingLines []string
	Skills       []string
	Tools        []string
	Titles       []string

	AllowResumeEnrichment bool
}

// BuildLedger assembles the evidence ledger for a request.
// The edited line itself is always item E1. Sibling lines are deduplicated
// against the main line and each other. Skills, tools, and titles become
// single aggregate items only when resume enrichment is allowed.
func BuildLedger(req Request) (*types.EvidenceLedger, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &BuildError{Message: "line under edit is empty"}
	}

	ledger := &types.EvidenceLedger{
		Scope:                 types.ScopeLineOnly,
		AllowResumeEnrichment: req.AllowResumeEnrichment,
	}

	ledger.Items = append(ledger.Items, types.EvidenceItem{
		ID:              MainLineID,
		Type:            types.EvidenceLine,
		Scope:           types.ScopeLineOnly,
		Source:          "original_text",
		Text:            text,
		NormalizedTerms: NormalizeTerms([]string{text}),
	})

	seen := map[string]bool{normalizeLine(text): true}
	siblingIndex := 2
	for _, sibling := range req.SiblingLines {
		sibling = strings.TrimSpace(sibling)
		if sibling == "" {
			continue
		}
		key := normalizeLine(sibling)
		if seen[key] {
			continue
		}
		seen[key] = true

		ledger.Items = append(ledger.Items, types.EvidenceItem{
			ID:              fmt.Sprintf("E%d", siblingIndex),
			Type:            types.EvidenceSiblingLines,
			Scope:           types.ScopeSection,
			Source:          "sibling_lines",
			Text:            sibling,
			NormalizedTerms: NormalizeTerms([]string{sibling}),
		})
		siblingIndex++
		ledger.Scope = types.ScopeSection
	}

	if req.AllowResumeEnrichment {
		if item, ok := aggregateItem(SkillsID, types.EvidenceSkills, "resume_skills", req.Skills); ok {
			ledger.Items = append(ledger.Items, item)
			ledger.Scope = types.ScopeResume
		}
		if item, ok := aggregateItem(ToolsID, types.EvidenceTools, "resume_tools", req.Tools); ok {
			ledger.Items = append(ledger.Items, item)
			ledger.Scope = types.ScopeResume
		}
		if item, ok := aggregateItem(TitlesID, types.EvidenceTitles, "resume_titles", req.Titles); ok {
			ledger.Items = append(ledger.Items, item)
			ledger.Scope = types.ScopeResume
		}
	}

	return ledger, nil
}

// aggregateItem builds a single aggregate evidence item from a value list
func aggregateItem(id string, typ types.EvidenceType, source string, values []string) (types.EvidenceItem, bool) {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return types.EvidenceItem{}, false
	}

	return types.EvidenceItem{
		ID:              id,
		Type:            typ,
		Scope:           types.ScopeResume,
		Source:          source,
		Text:            strings.Join(cleaned, ", "),
		NormalizedTerms: NormalizeTerms(cleaned),
	}, true
}

func normalizeLine(line string) string {
	return strings.Join(strings.Fields(strings.ToLower(line)), " ")
}
