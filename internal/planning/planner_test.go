package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/types"
)

func testLexicon(t *testing.T) *config.Provider {
	t.Helper()
	return config.NewProvider(config.Default())
}

func testLedger(t *testing.T, req evidence.Request) *types.EvidenceLedger {
	t.Helper()
	ledger, err := evidence.BuildLedger(req)
	require.NoError(t, err)
	return ledger
}

func actionsOfType(plan *types.RewritePlan, typ types.ActionType) []types.MicroAction {
	var out []types.MicroAction
	for _, action := range plan.Transformations {
		if action.Type == typ {
			out = append(out, action)
		}
	}
	return out
}

func TestPlan_WeakVerbWithContextHint(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Responsible for team onboarding"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindExperience})

	upgrades := actionsOfType(plan, types.ActionVerbUpgrade)
	require.Len(t, upgrades, 1)
	assert.Equal(t, "responsible for", upgrades[0].From)
	assert.Equal(t, "led", upgrades[0].To, "the team context hint should win over the default")
	assert.Equal(t, "team", upgrades[0].Context)
}

func TestPlan_WeakVerbDefaultUpgrade(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Responsible for invoicing"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindExperience})

	upgrades := actionsOfType(plan, types.ActionVerbUpgrade)
	require.Len(t, upgrades, 1)
	assert.Equal(t, "owned", upgrades[0].To)
	assert.Empty(t, upgrades[0].Context)
}

func TestPlan_FluffBundledIntoOneAction(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Successfully completed various tasks in order to help"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindExperience})

	fluffActions := actionsOfType(plan, types.ActionRemoveFluff)
	require.Len(t, fluffActions, 1)

	phrases := make([]string, 0, len(fluffActions[0].Phrases))
	for _, m := range fluffActions[0].Phrases {
		phrases = append(phrases, m.Phrase)
	}
	assert.Contains(t, phrases, "successfully completed")
	assert.Contains(t, phrases, "various tasks")
	assert.Contains(t, phrases, "in order to")
}

func TestPlan_IssuesAlwaysProduceActions(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Shipped the billing service"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger,
		[]types.IssueCode{types.IssueNoMetric, types.IssueTooVague, types.IssueWeakVerb},
		Options{Kind: types.KindExperience})

	assert.NotEmpty(t, actionsOfType(plan, types.ActionAddHow))
	assert.NotEmpty(t, actionsOfType(plan, types.ActionAddSpecificity))
	// No weak verb was detected, so the issue still yields a generic upgrade hint.
	upgrades := actionsOfType(plan, types.ActionVerbUpgrade)
	require.Len(t, upgrades, 1)
	assert.NotEmpty(t, upgrades[0].Hint)
}

func TestPlan_AddHowForbidsInventedNumbers(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Shipped the billing service"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger, []types.IssueCode{types.IssueNoMetric}, Options{Kind: types.KindExperience})

	addHow := actionsOfType(plan, types.ActionAddHow)
	require.Len(t, addHow, 1)
	assert.Contains(t, addHow[0].Hint, "do not add numbers")
	assert.True(t, plan.Constraints.ForbidNewNumbers)
}

func TestPlan_PassiveVoiceDetected(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "The rollout was completed across three regions"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindExperience})

	found := false
	for _, action := range actionsOfType(plan, types.ActionAddSpecificity) {
		if action.Hint == "convert passive voice to active voice" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPlan_SurfacesRelevantPermittedTools(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Built the deployment workflow for internal services"
	siblings := []string{"Packaged applications with Docker"}
	ledger := testLedger(t, evidence.Request{
		Text:                  original,
		Kind:                  types.KindExperience,
		SiblingLines:          siblings,
		Tools:                 []string{"Docker"},
		AllowResumeEnrichment: true,
	})

	plan := planner.Plan(original, ledger, nil, Options{
		Kind:         types.KindExperience,
		SiblingLines: siblings,
	})

	surfaced := actionsOfType(plan, types.ActionSurfaceTool)
	require.Len(t, surfaced, 1)
	assert.Equal(t, "docker", surfaced[0].Term)
	assert.Equal(t, evidence.ToolsID, surfaced[0].EvidenceID)
	assert.Empty(t, plan.NeedsUserInput)
}

func TestPlan_UnconfirmedToolBecomesUserPrompt(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Built the deployment workflow for internal services"
	ledger := testLedger(t, evidence.Request{
		Text:                  original,
		Kind:                  types.KindExperience,
		Tools:                 []string{"Docker"},
		AllowResumeEnrichment: true,
	})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindExperience})

	assert.Empty(t, actionsOfType(plan, types.ActionSurfaceTool))
	require.Len(t, plan.NeedsUserInput, 1)
	assert.Equal(t, "docker", plan.NeedsUserInput[0].Term)
	assert.Equal(t, "yes_no", plan.NeedsUserInput[0].Kind)
	assert.Contains(t, plan.NeedsUserInput[0].Question, "docker")
}

func TestPlan_IrrelevantToolNotSurfaced(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Wrote onboarding documentation for new hires"
	ledger := testLedger(t, evidence.Request{
		Text:                  original,
		Kind:                  types.KindSummary,
		Tools:                 []string{"Kafka"},
		AllowResumeEnrichment: true,
	})

	plan := planner.Plan(original, ledger, nil, Options{Kind: types.KindSummary})

	assert.Empty(t, actionsOfType(plan, types.ActionSurfaceTool))
	assert.Empty(t, plan.NeedsUserInput)
}

func TestPlan_GoalInference(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	lex := testLexicon(t)
	_ = lex

	tests := []struct {
		name     string
		original string
		issues   []types.IssueCode
		expected types.RewriteGoal
	}{
		{"No metric issue wins", "Shipped billing", []types.IssueCode{types.IssueNoMetric}, types.GoalImpact},
		{"Too long issue", "Shipped billing", []types.IssueCode{types.IssueTooLong}, types.GoalConciseness},
		{"Weak verb implies impact", "Responsible for invoicing", nil, types.GoalImpact},
		{"Fluff implies clarity", "Successfully completed the rollout", nil, types.GoalClarity},
		{"Default is clarity", "Shipped billing", nil, types.GoalClarity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := testLedger(t, evidence.Request{Text: tt.original, Kind: types.KindExperience})
			plan := planner.Plan(tt.original, ledger, tt.issues, Options{Kind: types.KindExperience})
			assert.Equal(t, tt.expected, plan.Goal)
		})
	}
}

func TestPlan_Deterministic(t *testing.T) {
	planner := NewPlanner(testLexicon(t))
	original := "Responsible for team budget and helped customers with migration tasks"
	ledger := testLedger(t, evidence.Request{Text: original, Kind: types.KindExperience})

	first := planner.Plan(original, ledger, []types.IssueCode{types.IssueNoMetric}, Options{Kind: types.KindExperience})
	for i := 0; i < 20; i++ {
		again := planner.Plan(original, ledger, []types.IssueCode{types.IssueNoMetric}, Options{Kind: types.KindExperience})
		require.Equal(t, first, again)
	}
}

func TestDetectWeakVerbs_LongestMatchWins(t *testing.T) {
	lex := testLexicon(t)
	hits := DetectWeakVerbs("Was in charge of planning", lex)
	require.Len(t, hits, 1)
	assert.Equal(t, "was in charge of", hits[0].From)
	assert.Equal(t, "directed", hits[0].To)
}

func TestDetectWeakVerbs_SortedByPosition(t *testing.T) {
	lex := testLexicon(t)
	hits := DetectWeakVerbs("Helped customers and worked on the api", lex)
	require.Len(t, hits, 2)
	assert.Equal(t, "helped", hits[0].From)
	assert.Equal(t, "guided", hits[0].To)
	assert.Equal(t, "worked on", hits[1].From)
	assert.Equal(t, "engineered", hits[1].To)
}

func TestDetectFluff_ReplacementsAndRemovals(t *testing.T) {
	lex := testLexicon(t)
	matches := DetectFluff("Successfully completed very large migrations", lex)
	require.NotEmpty(t, matches)

	byPhrase := make(map[string]types.FluffMatch)
	for _, m := range matches {
		byPhrase[m.Phrase] = m
	}

	redundant, ok := byPhrase["successfully completed"]
	require.True(t, ok)
	assert.Equal(t, "completed", redundant.Replacement)

	adverb, ok := byPhrase["very"]
	require.True(t, ok)
	assert.Empty(t, adverb.Replacement)
}

func TestDetectPassiveVoice(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Was completed", "The rollout was completed on time", true},
		{"Were driven", "Results were driven by the team", true},
		{"Active voice", "Completed the rollout on time", false},
		{"Past tense alone is not passive", "Led the rollout", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPassiveVoice(tt.text))
		})
	}
}
