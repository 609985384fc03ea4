package rewriting

import (
	"context"

	"github.com/jonathan/resume-refiner/internal/llm"
)

// LLMGenerator adapts an LLM client to the Generator interface
type LLMGenerator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMGenerator creates a generator over an LLM client at the given tier
func NewLLMGenerator(client llm.Client, tier llm.ModelTier) *LLMGenerator {
	return &LLMGenerator{client: client, tier: tier}
}

// Generate runs one model call and parses the JSON envelope
func (g *LLMGenerator) Generate(ctx context.Context, prompt PromptPair) (*GeneratorResponse, error) {
	raw, err := g.client.GenerateJSON(ctx, prompt.System, prompt.User, g.tier, prompt.Temperature)
	if err != nil {
		return nil, &GenerationError{Message: "model call failed", Cause: err}
	}
	return ParseGeneratorResponse(llm.CleanJSONBlock(raw))
}
