// Package types provides type definitions for structured data used throughout the resume-refiner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity classifies how serious a validation item is
type Severity string

// Severity constants
const (
	// SeverityInfo is purely informational
	SeverityInfo Severity = "info"
	// SeverityWarning degrades confidence but does not block acceptance
	SeverityWarning Severity = "warning"
	// SeverityCritical blocks acceptance of the candidate
	SeverityCritical Severity = "critical"
)

// ValidationCode names a specific validator check outcome
type ValidationCode string

// Validation code constants
const (
	// CodeNewNumber means the candidate contains a number absent from original and evidence
	CodeNewNumber ValidationCode = "NEW_NUMBER_ADDED"
	// CodeNewTool means the candidate names a technology absent from original and evidence
	CodeNewTool ValidationCode = "NEW_TOOL_ADDED"
	// CodeNewCompany means the candidate names a company absent from original and evidence
	CodeNewCompany ValidationCode = "NEW_COMPANY_ADDED"
	// CodeNewImpliedMetric means the candidate adds an unseen scale claim
	CodeNewImpliedMetric ValidationCode = "NEW_IMPLIED_METRIC"
	// CodeInvalidEvidenceID means the map references an ID missing from the ledger
	CodeInvalidEvidenceID ValidationCode = "INVALID_EVIDENCE_ID"
	// CodeSpanNotFound means a claimed span is not a substring of the candidate
	CodeSpanNotFound ValidationCode = "SPAN_NOT_FOUND"
	// CodeUnsupportedToolClaim means a candidate tool is not covered by any map entry
	CodeUnsupportedToolClaim ValidationCode = "UNSUPPORTED_TOOL_CLAIM"
	// CodeUnsupportedMetricClaim means a candidate number is not covered by any map entry
	CodeUnsupportedMetricClaim ValidationCode = "UNSUPPORTED_METRIC_CLAIM"
	// CodeWeakEvidenceMatch means a span overlaps its cited evidence too little
	CodeWeakEvidenceMatch ValidationCode = "WEAK_EVIDENCE_MATCH"
	// CodeLengthExplosion means the candidate grew beyond the configured multiplier
	CodeLengthExplosion ValidationCode = "LENGTH_EXPLOSION"
)

// ValidationItem is a single finding from the fabrication validator
type ValidationItem struct {
	Code     ValidationCode `json:"code"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
}

// ValidationResult is the complete, severity-tagged outcome of validating
// one candidate. Passed holds exactly when no item is critical.
type ValidationResult struct {
	Passed bool             `json:"passed"`
	Items  []ValidationItem `json:"items,omitempty"`
}

// Criticals returns all critical items
func (r *ValidationResult) Criticals() []ValidationItem {
	return r.itemsWithSeverity(SeverityCritical)
}

// Warnings returns all warning items
func (r *ValidationResult) Warnings() []ValidationItem {
	return r.itemsWithSeverity(SeverityWarning)
}

func (r *ValidationResult) itemsWithSeverity(sev Severity) []ValidationItem {
	var out []ValidationItem
	for _, item := range r.Items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}
	return out
}
