package evidence

import "github.com/jonathan/resume-refiner/internal/types"

// Decision is the outcome of the scope/permission check for a resume-wide term
type Decision string

// Decision constants
const (
	// DecisionAllow permits the term in the line under edit
	DecisionAllow Decision = "allow"
	// DecisionNeedsConfirmation requires an explicit user yes/no before use.
	// The builder never silently allows or silently drops such a term.
	DecisionNeedsConfirmation Decision = "needs_confirmation"
)

// EnrichmentDecision decides whether a resume-wide term may be surfaced in
// a line of the given content kind. Summary and skills content may use
// resume-wide evidence unconditionally. Experience bullets may only use a
// term that already appears in a sibling line of the same role; anything
// else is pushed to the user for confirmation so resume-wide tools do not
// leak into unrelated roles.
func EnrichmentDecision(kind types.ContentKind, term string, siblingLines []string) Decision {
	switch kind {
	case types.KindSummary, types.KindSkills:
		return DecisionAllow
	}

	for _, sibling := range siblingLines {
		if ContainsTerm(sibling, term) {
			return DecisionAllow
		}
	}
	return DecisionNeedsConfirmation
}
