// Package rewriting orchestrates the generate-validate-retry loop that
// turns a rewrite plan into a certified fabrication-free improvement, or a
// transparent fallback to the original text.
package rewriting

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-refiner/internal/schemas"
	"github.com/jonathan/resume-refiner/internal/types"
)

// PromptPair is the full input to one generation attempt
type PromptPair struct {
	System string
	User   string

	// Temperature is the sampling temperature for this attempt; retries
	// lower it to reduce creative drift.
	Temperature float32
}

// GeneratorResponse is the envelope every generation adapter must return.
// The evidence map inside is a self-report and is never trusted: the
// validator re-derives all facts from Improved independently.
type GeneratorResponse struct {
	Improved    string                  `json:"improved"`
	EvidenceMap []types.EvidenceMapItem `json:"evidence_map"`
	Reasoning   string                  `json:"reasoning"`
	Changes     types.ChangeFlags       `json:"changes"`
}

// Generator produces a candidate rewrite plus a claimed evidence map.
// Implementations must honor ctx cancellation; the engine wraps every call
// in a timeout and treats a timeout as a failed attempt.
type Generator interface {
	Generate(ctx context.Context, prompt PromptPair) (*GeneratorResponse, error)
}

// ParseGeneratorResponse parses raw adapter output into the response
// envelope. A response that fails schema validation is a generation
// failure, not a validation failure: the attempt is retried identically.
func ParseGeneratorResponse(raw string) (*GeneratorResponse, error) {
	data := []byte(raw)
	if err := schemas.ValidateGeneratorResponse(data); err != nil {
		return nil, &GenerationError{
			Message: "response does not match the expected envelope",
			Cause:   err,
		}
	}

	var resp GeneratorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &GenerationError{
			Message: "response is not valid JSON",
			Cause:   err,
		}
	}
	return &resp, nil
}
