package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-refiner/internal/prompts"
	"github.com/jonathan/resume-refiner/internal/types"
)

const promptFile = "rewrite.json"

// retryTemperatureStep is subtracted from the base temperature per retry
const retryTemperatureStep = 0.15

// PromptBuilder renders prompt pairs from a plan and a ledger. The plan is
// built once per request and reused verbatim; only the prompt wrapper
// changes between attempts.
type PromptBuilder struct {
	lib             *prompts.Library
	baseTemperature float32
}

// NewPromptBuilder creates a prompt builder over a prompt library
func NewPromptBuilder(lib *prompts.Library, baseTemperature float32) *PromptBuilder {
	return &PromptBuilder{lib: lib, baseTemperature: baseTemperature}
}

// Build renders the prompt for any attempt. Attempt zero is the initial
// prompt; later attempts embed the previous attempt's critical errors and
// use stricter wording with a lower temperature.
func (b *PromptBuilder) Build(original string, plan *types.RewritePlan, ledger *types.EvidenceLedger, targetRole string, attempt int, criticals []types.ValidationItem) PromptPair {
	var sb strings.Builder

	intro := b.lib.MustGet(promptFile, "improve-intro")
	sb.WriteString(prompts.Format(intro, map[string]string{
		"Original": original,
		"Goal":     string(plan.Goal),
	}))
	sb.WriteString("\n")

	sb.WriteString(b.lib.MustGet(promptFile, "evidence-header"))
	itemTemplate := b.lib.MustGet(promptFile, "evidence-item")
	for _, item := range ledger.Items {
		sb.WriteString(prompts.Format(itemTemplate, map[string]string{
			"ID":     item.ID,
			"Source": item.Source,
			"Text":   item.Text,
		}))
	}
	sb.WriteString("\n")

	if len(plan.Transformations) > 0 {
		sb.WriteString(b.lib.MustGet(promptFile, "transformations-header"))
		for _, action := range plan.Transformations {
			sb.WriteString("- ")
			sb.WriteString(describeAction(action))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if targetRole != "" {
		roleTemplate := b.lib.MustGet(promptFile, "target-role")
		sb.WriteString(prompts.Format(roleTemplate, map[string]string{"Role": targetRole}))
		sb.WriteString("\n")
	}

	sb.WriteString(prompts.Format(b.lib.MustGet(promptFile, "constraints"), map[string]string{
		"MaxLength": fmt.Sprintf("%d", plan.Constraints.MaxLength),
	}))
	sb.WriteString("\n")

	if attempt > 0 && len(criticals) > 0 {
		var errs strings.Builder
		for _, item := range criticals {
			errs.WriteString(fmt.Sprintf("- [%s] %s\n", item.Code, item.Message))
		}
		retryTemplate := b.lib.MustGet(promptFile, "retry-feedback")
		sb.WriteString(prompts.Format(retryTemplate, map[string]string{"Errors": errs.String()}))
		sb.WriteString("\n")
	}

	sb.WriteString(b.lib.MustGet(promptFile, "response-format"))

	system := b.lib.MustGet(promptFile, "system")
	if attempt > 0 {
		system = b.lib.MustGet(promptFile, "retry-system")
	}

	return PromptPair{
		System:      system,
		User:        sb.String(),
		Temperature: b.temperatureFor(attempt),
	}
}

func (b *PromptBuilder) temperatureFor(attempt int) float32 {
	t := b.baseTemperature - float32(attempt)*retryTemperatureStep
	if t < 0 {
		t = 0
	}
	return t
}

// describeAction renders one micro-action as an instruction line
func describeAction(action types.MicroAction) string {
	switch action.Type {
	case types.ActionVerbUpgrade:
		if action.From == "" {
			return action.Hint
		}
		return fmt.Sprintf("replace the weak verb %q with %q", action.From, action.To)
	case types.ActionRemoveFluff:
		var parts []string
		for _, m := range action.Phrases {
			if m.Replacement != "" {
				parts = append(parts, fmt.Sprintf("replace %q with %q", m.Phrase, m.Replacement))
			} else {
				parts = append(parts, fmt.Sprintf("remove %q", m.Phrase))
			}
		}
		return strings.Join(parts, "; ")
	case types.ActionAddHow, types.ActionAddSpecificity, types.ActionTenseAlign:
		return action.Hint
	case types.ActionSurfaceTool:
		return fmt.Sprintf("mention %s (evidence %s) if it fits naturally", action.Term, action.EvidenceID)
	default:
		return string(action.Type)
	}
}
