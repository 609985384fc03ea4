package rewriting

import (
	"context"
	"strings"
	"sync"

	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/types"
)

// MockGenerator returns canned responses in order and records every prompt
// it received. Used by tests and by the CLI dry-run mode. Once the scripted
// responses run out it echoes the line back with a trivial evidence map.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []PromptPair
}

// MockResponse is one scripted generation outcome
type MockResponse struct {
	Response *GeneratorResponse
	Err      error
}

// NewMockGenerator creates a mock with scripted responses
func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

// Generate pops the next scripted response, or echoes the original line
// once the script is exhausted
func (m *MockGenerator) Generate(_ context.Context, prompt PromptPair) (*GeneratorResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, prompt)
	if len(m.responses) > 0 {
		next := m.responses[0]
		m.responses = m.responses[1:]
		return next.Response, next.Err
	}

	original := extractOriginal(prompt.User)
	return &GeneratorResponse{
		Improved:  original,
		Reasoning: "no model configured; echoing the original line",
		EvidenceMap: []types.EvidenceMapItem{{
			ImprovedSpan: original,
			EvidenceIDs:  []string{evidence.MainLineID},
		}},
	}, nil
}

// Calls returns every prompt seen so far
func (m *MockGenerator) Calls() []PromptPair {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PromptPair(nil), m.calls...)
}

// extractOriginal recovers the quoted original line from a rendered
// prompt. Best effort; returns the empty string when the prompt does not
// match the expected shape.
func extractOriginal(user string) string {
	const marker = "Original line:\n"
	start := strings.Index(user, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)
	end := strings.Index(user[start:], "\n")
	if end < 0 {
		return user[start:]
	}
	return user[start : start+end]
}
