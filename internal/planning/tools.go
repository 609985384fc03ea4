package planning

import (
	"fmt"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/types"
)

// surfaceTools proposes surfacing resume-wide skill/tool terms that are not
// already in the original text. A term must be topically relevant (one of
// its configured context keywords appears in the line) and permitted by the
// scope rule. Relevant but unpermitted terms become user confirmation
// prompts rather than being assumed either way. At most maxTools actions
// are emitted.
func surfaceTools(original string, ledger *types.EvidenceLedger, kind types.ContentKind, siblings []string, lex *config.Provider, maxTools int) ([]types.MicroAction, []types.UserPrompt) {
	var actions []types.MicroAction
	var prompts []types.UserPrompt

	for i := range ledger.Items {
		item := &ledger.Items[i]
		if item.Type != types.EvidenceSkills && item.Type != types.EvidenceTools {
			continue
		}

		for _, term := range item.NormalizedTerms {
			if evidence.ContainsTerm(original, term) {
				continue
			}
			if !topicallyRelevant(original, term, lex) {
				continue
			}

			switch evidence.EnrichmentDecision(kind, term, siblings) {
			case evidence.DecisionAllow:
				if len(actions) >= maxTools {
					continue
				}
				actions = append(actions, types.MicroAction{
					Type:       types.ActionSurfaceTool,
					Term:       term,
					EvidenceID: item.ID,
				})
			case evidence.DecisionNeedsConfirmation:
				prompts = append(prompts, types.UserPrompt{
					Question: fmt.Sprintf("Did you use %s in this role?", term),
					Term:     term,
					Kind:     "yes_no",
				})
			}
		}
	}

	return actions, prompts
}

// topicallyRelevant checks the keyword-category heuristic: a tool is
// relevant only when one of its configured topic keywords occurs in the line
func topicallyRelevant(original, term string, lex *config.Provider) bool {
	keywords := lex.ToolTopics(term)
	if len(keywords) == 0 {
		return false
	}
	for _, keyword := range keywords {
		if evidence.ContainsTerm(original, keyword) {
			return true
		}
	}
	return false
}
