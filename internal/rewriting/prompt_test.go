package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/planning"
	"github.com/jonathan/resume-refiner/internal/prompts"
	"github.com/jonathan/resume-refiner/internal/types"
)

func testPromptBuilder(t *testing.T) *PromptBuilder {
	t.Helper()
	lib, err := prompts.NewLibrary()
	require.NoError(t, err)
	return NewPromptBuilder(lib, 0.4)
}

func TestBuild_InitialPrompt(t *testing.T) {
	builder := testPromptBuilder(t)
	lex := config.NewProvider(config.Default())
	original := "Responsible for team onboarding"

	ledger, err := evidence.BuildLedger(evidence.Request{
		Text:         original,
		Kind:         types.KindExperience,
		SiblingLines: []string{"Shipped the billing service"},
	})
	require.NoError(t, err)

	plan := planning.NewPlanner(lex).Plan(original, ledger, nil, planning.Options{Kind: types.KindExperience})
	prompt := builder.Build(original, plan, ledger, "Platform Engineer", 0, nil)

	assert.Contains(t, prompt.User, original)
	assert.Contains(t, prompt.User, "[E1]")
	assert.Contains(t, prompt.User, "[E2]")
	assert.Contains(t, prompt.User, "Shipped the billing service")
	assert.Contains(t, prompt.User, `"led"`, "the planned verb upgrade appears as an instruction")
	assert.Contains(t, prompt.User, "Platform Engineer")
	assert.Contains(t, prompt.User, "300", "the max-length constraint is rendered")
	assert.NotContains(t, prompt.User, "previous attempt")
	assert.NotEmpty(t, prompt.System)
	assert.InDelta(t, 0.4, float64(prompt.Temperature), 1e-6)
}

func TestBuild_RetryPrompt(t *testing.T) {
	builder := testPromptBuilder(t)
	lex := config.NewProvider(config.Default())
	original := "Improved API performance by 40%"

	ledger, err := evidence.BuildLedger(evidence.Request{Text: original, Kind: types.KindExperience})
	require.NoError(t, err)
	plan := planning.NewPlanner(lex).Plan(original, ledger, nil, planning.Options{Kind: types.KindExperience})

	criticals := []types.ValidationItem{{
		Code:     types.CodeNewNumber,
		Severity: types.SeverityCritical,
		Message:  `number "50%" is not present in the original text or evidence`,
	}}
	initial := builder.Build(original, plan, ledger, "", 0, nil)
	retry := builder.Build(original, plan, ledger, "", 1, criticals)

	assert.Contains(t, retry.User, "NEW_NUMBER_ADDED")
	assert.Contains(t, retry.User, "rejected for fabricating")
	assert.NotEqual(t, initial.System, retry.System, "retries use the stricter system prompt")
	assert.Less(t, retry.Temperature, initial.Temperature)
}

func TestBuild_TemperatureClampedAtZero(t *testing.T) {
	builder := testPromptBuilder(t)
	lex := config.NewProvider(config.Default())
	original := "Improved API performance by 40%"

	ledger, err := evidence.BuildLedger(evidence.Request{Text: original, Kind: types.KindExperience})
	require.NoError(t, err)
	plan := planning.NewPlanner(lex).Plan(original, ledger, nil, planning.Options{Kind: types.KindExperience})

	prompt := builder.Build(original, plan, ledger, "", 10, nil)
	assert.GreaterOrEqual(t, prompt.Temperature, float32(0))
}
