// Package observability provides the process logger plus formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-refiner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlan outputs the rewrite plan before any generation happens.
func (p *Printer) PrintPlan(plan *types.RewritePlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Goal: %s\n", plan.Goal))
	if len(plan.Issues) > 0 {
		issues := make([]string, 0, len(plan.Issues))
		for _, issue := range plan.Issues {
			issues = append(issues, string(issue))
		}
		sb.WriteString(fmt.Sprintf("Issues: %s\n", strings.Join(issues, ", ")))
	}
	sb.WriteString("\n")

	if len(plan.Transformations) > 0 {
		sb.WriteString("Transformations:\n")
		count := min(len(plan.Transformations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", plan.Transformations[i].Type))
		}
		if len(plan.Transformations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.Transformations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Max length: %d chars\n", plan.Constraints.MaxLength))
	if plan.Constraints.ForbidNewNumbers {
		sb.WriteString("No new numbers\n")
	}
	if plan.Constraints.ForbidNewCompanies {
		sb.WriteString("No new companies\n")
	}

	p.printBox("REWRITE PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvidence outputs the evidence ledger backing a rewrite.
func (p *Printer) PrintEvidence(ledger *types.EvidenceLedger) {
	if ledger == nil || len(ledger.Items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d evidence items (scope: %s)\n\n", len(ledger.Items), ledger.Scope))

	count := min(len(ledger.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := ledger.Items[i]
		text := item.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", item.ID, text))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ledger.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(ledger.Items)-maxItemsToShow))
	}

	p.printBox("EVIDENCE LEDGER", sb.String())
}

// PrintRewriteResult outputs one improved line with its validation summary.
func (p *Printer) PrintRewriteResult(result *types.RewriteResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	original := result.Original
	if len(original) > 50 {
		original = original[:47] + "..."
	}
	improved := result.Improved
	if len(improved) > 50 {
		improved = improved[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Before: %s\n", original))
	sb.WriteString(fmt.Sprintf("After:  %s\n", improved))
	sb.WriteString("\n")

	checks := []string{}
	if result.Changes.StrongerVerb {
		checks = append(checks, "✓verb")
	}
	if result.Changes.AddedMetric {
		checks = append(checks, "✓metrics")
	}
	if result.Changes.MoreSpecific {
		checks = append(checks, "✓specific")
	}
	if result.Changes.RemovedFluff {
		checks = append(checks, "✓fluff")
	}
	if result.Changes.TailoredToRole {
		checks = append(checks, "✓role")
	}
	if len(checks) > 0 {
		sb.WriteString(fmt.Sprintf("[%s]\n", strings.Join(checks, " ")))
	}

	sb.WriteString(fmt.Sprintf("Confidence: %s (%d attempts)\n", result.Confidence, result.Attempts))
	if result.FellBack {
		sb.WriteString("Fell back to original text\n")
	}
	if result.EstimatedScoreGain > 0 {
		sb.WriteString(fmt.Sprintf("Estimated gain: +%.1f\n", result.EstimatedScoreGain))
	}

	title := "REWRITE RESULT"
	if result.FellBack {
		title = "REWRITE RESULT (fallback)"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs validation findings grouped by severity.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *types.ValidationResult) {
	if result == nil {
		return
	}
	if len(result.Items) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FABRICATION FINDINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Passed: %v\n\n", result.Passed))

	for i, item := range result.Items {
		marker := "⚠"
		if item.Severity == types.SeverityCritical {
			marker = "✗"
		}
		message := item.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, item.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(result.Items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION FINDINGS", sb.String())
}

// PrintSectionResult outputs the per-section summary after coherence.
func (p *Printer) PrintSectionResult(result *types.SectionResult) {
	if result == nil || len(result.Lines) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Improved %d lines\n", len(result.Lines)))
	sb.WriteString(fmt.Sprintf("Dominant tense: %s (%s)\n\n", result.DominantTense, result.TenseConfidence))

	count := min(len(result.Lines), maxItemsToShow)
	for i := 0; i < count; i++ {
		line := result.Lines[i]
		text := line.Improved
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		marker := "•"
		if line.FellBack {
			marker = "○"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, text))
	}
	if len(result.Lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(result.Lines)-maxItemsToShow))
	}

	if len(result.Notes) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n%d coherence notes", len(result.Notes)))
	}

	p.printBox("SECTION RESULT", sb.String())
}
