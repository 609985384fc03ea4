package planning

import (
	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/types"
)

// Planner produces rewrite plans from detected weaknesses and declared
// issues. Planning is deterministic and side-effect-free: the same inputs
// always yield the same plan.
type Planner struct {
	lex *config.Provider
}

// NewPlanner creates a planner backed by the given lexicon provider
func NewPlanner(lex *config.Provider) *Planner {
	return &Planner{lex: lex}
}

// Options carries the optional planning context
type Options struct {
	Kind         types.ContentKind
	TargetRole   string
	SiblingLines []string
}

// Plan inspects the original text, the declared issues, and the evidence
// ledger, and emits the ordered transformation list with hard constraints.
// Steps run in a fixed order: weak verbs, fluff, issue-driven actions,
// passive voice, tool surfacing, goal inference, constraints.
func (p *Planner) Plan(original string, ledger *types.EvidenceLedger, issues []types.IssueCode, opts Options) *types.RewritePlan {
	plan := &types.RewritePlan{Issues: issues}

	// 1. Weak verbs.
	verbHits := DetectWeakVerbs(original, p.lex)
	for _, hit := range verbHits {
		plan.Transformations = append(plan.Transformations, types.MicroAction{
			Type:    types.ActionVerbUpgrade,
			From:    hit.From,
			To:      hit.To,
			Context: hit.Context,
		})
	}

	// 2. Fluff, bundled into a single action.
	fluff := DetectFluff(original, p.lex)
	if len(fluff) > 0 {
		plan.Transformations = append(plan.Transformations, types.MicroAction{
			Type:    types.ActionRemoveFluff,
			Phrases: fluff,
		})
	}

	// 3. Issue-driven actions. Planning must not silently no-op when the
	// caller asserts a problem exists.
	for _, issue := range issues {
		switch issue {
		case types.IssueNoMetric:
			plan.Transformations = append(plan.Transformations, types.MicroAction{
				Type: types.ActionAddHow,
				Hint: "explain how the result was achieved; do not add numbers that are not in evidence",
			})
		case types.IssueTooVague:
			plan.Transformations = append(plan.Transformations, types.MicroAction{
				Type: types.ActionAddSpecificity,
				Hint: "replace vague claims with concrete details from evidence",
			})
		case types.IssueWeakVerb:
			if len(verbHits) == 0 {
				plan.Transformations = append(plan.Transformations, types.MicroAction{
					Type: types.ActionVerbUpgrade,
					Hint: "open with a stronger action verb",
				})
			}
		}
	}

	// 4. Passive voice.
	if DetectPassiveVoice(original) {
		plan.Transformations = append(plan.Transformations, types.MicroAction{
			Type: types.ActionAddSpecificity,
			Hint: "convert passive voice to active voice",
		})
	}

	// 5. Tool surfacing.
	toolActions, userPrompts := surfaceTools(original, ledger, opts.Kind, opts.SiblingLines, p.lex, p.lex.Thresholds().MaxSurfacedTools)
	plan.Transformations = append(plan.Transformations, toolActions...)
	plan.NeedsUserInput = userPrompts

	// 6. Goal inference.
	plan.Goal = inferGoal(issues, plan.Transformations)

	// 7. Fixed constraints. Tools may still come from evidence, so
	// ForbidNewTools stays false; the validator checks provenance.
	plan.Constraints = types.Constraints{
		MaxLength:          p.lex.Thresholds().MaxLineLength,
		ForbidNewNumbers:   true,
		ForbidNewTools:     false,
		ForbidNewCompanies: true,
	}

	return plan
}

// inferGoal picks the single dominant goal. Issue codes take priority over
// planned actions; the default is clarity.
func inferGoal(issues []types.IssueCode, actions []types.MicroAction) types.RewriteGoal {
	for _, issue := range issues {
		switch issue {
		case types.IssueNoMetric:
			return types.GoalImpact
		case types.IssueTooVague:
			return types.GoalClarity
		case types.IssueTooLong:
			return types.GoalConciseness
		}
	}

	hasVerbOrTool := false
	hasFluff := false
	for _, action := range actions {
		switch action.Type {
		case types.ActionVerbUpgrade, types.ActionSurfaceTool:
			hasVerbOrTool = true
		case types.ActionRemoveFluff:
			hasFluff = true
		}
	}
	if hasVerbOrTool {
		return types.GoalImpact
	}
	if hasFluff {
		return types.GoalClarity
	}
	return types.GoalClarity
}
