package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-refiner/internal/types"
)

// checkMapIntegrity verifies the generator's claimed evidence map against
// the ledger and the candidate text. Every referenced evidence ID must
// exist, and every claimed span must literally occur in the candidate.
func checkMapIntegrity(candidate string, ledger *types.EvidenceLedger, evidenceMap []types.EvidenceMapItem) []types.ValidationItem {
	var items []types.ValidationItem

	for _, entry := range evidenceMap {
		for _, id := range entry.EvidenceIDs {
			if !ledger.HasItem(id) {
				items = append(items, types.ValidationItem{
					Code:     types.CodeInvalidEvidenceID,
					Severity: types.SeverityCritical,
					Message:  fmt.Sprintf("evidence map references unknown evidence id %q", id),
				})
			}
		}
		if !strings.Contains(candidate, entry.ImprovedSpan) {
			items = append(items, types.ValidationItem{
				Code:     types.CodeSpanNotFound,
				Severity: types.SeverityCritical,
				Message:  fmt.Sprintf("claimed span %q does not occur in the candidate text", entry.ImprovedSpan),
			})
		}
	}

	return items
}

// checkMapCoverage verifies that every tool and number the validator itself
// found in the candidate is covered by some map entry whose span contains
// the fact or is contained by it. This guards against a generator claiming
// evidence for one phrase while smuggling an unmapped fact elsewhere.
func checkMapCoverage(tools []string, numbers []NumberToken, evidenceMap []types.EvidenceMapItem) []types.ValidationItem {
	var items []types.ValidationItem

	for _, tool := range tools {
		if !covered(tool, evidenceMap) {
			items = append(items, types.ValidationItem{
				Code:     types.CodeUnsupportedToolClaim,
				Severity: types.SeverityCritical,
				Message:  fmt.Sprintf("tool %q in the candidate is not covered by any evidence map entry", tool),
			})
		}
	}

	for _, number := range numbers {
		if !covered(number.Raw, evidenceMap) {
			items = append(items, types.ValidationItem{
				Code:     types.CodeUnsupportedMetricClaim,
				Severity: types.SeverityCritical,
				Message:  fmt.Sprintf("number %q in the candidate is not covered by any evidence map entry", number.Raw),
			})
		}
	}

	return items
}

// covered reports whether a fact string overlaps some claimed span:
// the span contains the fact, or the fact contains the span.
func covered(fact string, evidenceMap []types.EvidenceMapItem) bool {
	factLower := strings.ToLower(fact)
	for _, entry := range evidenceMap {
		spanLower := strings.ToLower(entry.ImprovedSpan)
		if strings.Contains(spanLower, factLower) || strings.Contains(factLower, spanLower) {
			return true
		}
	}
	return false
}
