package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/types"
)

// Validator detects fabrication in candidate rewrites. Validation is a pure
// function of (original, candidate, ledger, evidence map): no hidden state,
// no mutation, total over well-typed input.
type Validator struct {
	lex *config.Provider
}

// NewValidator creates a validator backed by the given lexicon provider
func NewValidator(lex *config.Provider) *Validator {
	return &Validator{lex: lex}
}

// Validate re-derives facts from the candidate independent of what the
// generator claims and compares them against original plus evidence.
// The result passes exactly when no critical item is present. Validation
// never fixes text; it only reports.
func (v *Validator) Validate(original, candidate string, ledger *types.EvidenceLedger, evidenceMap []types.EvidenceMapItem) types.ValidationResult {
	var items []types.ValidationItem

	allowedTexts := append([]string{original}, ledger.Texts()...)
	allowedBlob := strings.Join(allowedTexts, "\n")

	candidateNumbers := ExtractNumbers(candidate)
	candidateTools := ExtractTools(candidate, v.lex)

	items = append(items, v.checkNumbers(candidateNumbers, allowedBlob)...)
	items = append(items, v.checkTools(candidateTools, allowedTexts, ledger)...)
	items = append(items, v.checkCompanies(candidate, allowedTexts)...)
	items = append(items, v.checkScaleClaims(candidate, allowedBlob)...)

	items = append(items, checkMapIntegrity(candidate, ledger, evidenceMap)...)
	items = append(items, checkMapCoverage(candidateTools, candidateNumbers, evidenceMap)...)

	items = append(items, v.checkOverlap(ledger, evidenceMap)...)
	items = append(items, v.checkLength(original, candidate)...)

	return types.ValidationResult{
		Passed: !anyCritical(items),
		Items:  items,
	}
}

// checkNumbers flags candidate numbers whose canonical value appears
// nowhere in the original or the evidence. Numbers that merely changed
// surface form ("$5K" vs "$5,000") are not flagged.
func (v *Validator) checkNumbers(candidateNumbers []NumberToken, allowedBlob string) []types.ValidationItem {
	allowed := ExtractNumbers(allowedBlob)

	var items []types.ValidationItem
	for _, number := range candidateNumbers {
		if !containsValue(allowed, number.Value) {
			items = append(items, types.ValidationItem{
				Code:     types.CodeNewNumber,
				Severity: types.SeverityCritical,
				Message:  fmt.Sprintf("number %q is not present in the original text or evidence", number.Raw),
			})
		}
	}
	return items
}

// checkTools flags candidate technology terms absent from the original,
// the evidence texts, and the ledger's normalized terms
func (v *Validator) checkTools(candidateTools []string, allowedTexts []string, ledger *types.EvidenceLedger) []types.ValidationItem {
	normalized := make(map[string]bool)
	for _, term := range ledger.NormalizedTerms() {
		normalized[term] = true
	}

	var items []types.ValidationItem
	for _, tool := range candidateTools {
		if normalized[tool] || termInAny(tool, allowedTexts) {
			continue
		}
		items = append(items, types.ValidationItem{
			Code:     types.CodeNewTool,
			Severity: types.SeverityCritical,
			Message:  fmt.Sprintf("tool %q is not present in the original text or evidence", tool),
		})
	}
	return items
}

// checkCompanies flags company-like phrases absent from original and evidence
func (v *Validator) checkCompanies(candidate string, allowedTexts []string) []types.ValidationItem {
	var items []types.ValidationItem
	for _, company := range ExtractCompanies(candidate) {
		if termInAny(company, allowedTexts) {
			continue
		}
		items = append(items, types.ValidationItem{
			Code:     types.CodeNewCompany,
			Severity: types.SeverityCritical,
			Message:  fmt.Sprintf("company %q is not present in the original text or evidence", company),
		})
	}
	return items
}

// checkScaleClaims flags configured scale-claim phrases not seen before
func (v *Validator) checkScaleClaims(candidate, allowedBlob string) []types.ValidationItem {
	allowedLower := strings.ToLower(allowedBlob)

	var items []types.ValidationItem
	for _, claim := range ExtractScaleClaims(candidate, v.lex) {
		if phrasePresent(allowedLower, claim) {
			continue
		}
		items = append(items, types.ValidationItem{
			Code:     types.CodeNewImpliedMetric,
			Severity: types.SeverityCritical,
			Message:  fmt.Sprintf("scale claim %q is not present in the original text or evidence", claim),
		})
	}
	return items
}

// checkOverlap warns when a claimed span shares too few significant words
// with its cited evidence and is not a direct or fuzzy substring of it
func (v *Validator) checkOverlap(ledger *types.EvidenceLedger, evidenceMap []types.EvidenceMapItem) []types.ValidationItem {
	threshold := v.lex.Thresholds().OverlapThreshold

	var items []types.ValidationItem
	for _, entry := range evidenceMap {
		var cited []string
		for _, id := range entry.EvidenceIDs {
			if item, ok := ledger.Item(id); ok {
				cited = append(cited, item.Text)
			}
		}
		if len(cited) == 0 {
			continue // unknown ids are already critical via map integrity
		}

		if substringMatch(entry.ImprovedSpan, cited, v.lex) {
			continue
		}
		if ratio := overlapRatio(entry.ImprovedSpan, cited, v.lex); ratio < threshold {
			items = append(items, types.ValidationItem{
				Code:     types.CodeWeakEvidenceMatch,
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("span %q overlaps its cited evidence by only %.0f%%", entry.ImprovedSpan, ratio*100),
			})
		}
	}
	return items
}

// checkLength warns when the candidate grew beyond the configured multiplier
func (v *Validator) checkLength(original, candidate string) []types.ValidationItem {
	multiplier := v.lex.Thresholds().MaxLengthMultiplier
	limit := int(float64(len(original)) * multiplier)
	if len(original) == 0 || len(candidate) <= limit {
		return nil
	}
	return []types.ValidationItem{{
		Code:     types.CodeLengthExplosion,
		Severity: types.SeverityWarning,
		Message:  fmt.Sprintf("candidate is %d characters, more than %.1fx the original's %d", len(candidate), multiplier, len(original)),
	}}
}

func termInAny(term string, texts []string) bool {
	for _, text := range texts {
		if evidence.ContainsTerm(text, term) {
			return true
		}
	}
	return false
}

func anyCritical(items []types.ValidationItem) bool {
	for _, item := range items {
		if item.Severity == types.SeverityCritical {
			return true
		}
	}
	return false
}
