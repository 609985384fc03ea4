package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex := Default()

	assert.NotEmpty(t, lex.WeakVerbs)
	assert.NotEmpty(t, lex.Fluff)
	assert.NotEmpty(t, lex.TechTerms)
	assert.NotEmpty(t, lex.IrregularPast)
	assert.NoError(t, lex.Validate())
	assert.Equal(t, 2, lex.Thresholds.MaxRetries)
	assert.Greater(t, lex.Thresholds.MaxLengthMultiplier, 1.0)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, defaultLexiconJSON, 0644))

	lex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), lex)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Not JSON", "nope"},
		{"Missing thresholds", `{"weak_verbs": {"helped": {"default": "supported"}}, "fluff": {}, "scale_claims": [], "tech_terms": [], "stop_words": [], "irregular_past": {}}`},
		{"Unknown fluff category", `{"weak_verbs": {"helped": {"default": "supported"}}, "fluff": {"sparkles": ["x"]}, "scale_claims": [], "tech_terms": [], "stop_words": [], "irregular_past": {}, "thresholds": {"max_length_multiplier": 1.5, "overlap_threshold": 0.4, "max_retries": 2, "adapter_timeout_seconds": 45}}`},
		{"Multiplier too small", `{"weak_verbs": {"helped": {"default": "supported"}}, "fluff": {}, "scale_claims": [], "tech_terms": [], "stop_words": [], "irregular_past": {}, "thresholds": {"max_length_multiplier": 0.9, "overlap_threshold": 0.4, "max_retries": 2, "adapter_timeout_seconds": 45}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexicon.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestProvider_Lookups(t *testing.T) {
	p := NewProvider(Default())

	verbs := p.WeakVerbsLongestFirst()
	require.NotEmpty(t, verbs)
	for i := 1; i < len(verbs); i++ {
		assert.GreaterOrEqual(t, len(verbs[i-1]), len(verbs[i]), "weak verbs must be sorted longest first")
	}

	up, ok := p.VerbUpgrade("responsible for")
	require.True(t, ok)
	assert.Equal(t, "owned", up.Default)
	assert.Equal(t, "led", up.ContextHints["team"])

	_, ok = p.VerbUpgrade("launched")
	assert.False(t, ok)

	assert.True(t, p.IsTechTerm("python"))
	assert.True(t, p.IsTechTerm("PYTHON"))
	assert.False(t, p.IsTechTerm("basket-weaving"))

	assert.True(t, p.IsStopWord("the"))
	assert.False(t, p.IsStopWord("pipeline"))

	assert.Equal(t, "completed", p.RedundantReplacement("successfully completed"))
	assert.Empty(t, p.RedundantReplacement("very"))

	claims := p.ScaleClaimsLongestFirst()
	require.NotEmpty(t, claims)
	assert.Contains(t, claims, "massive")

	past, ok := p.PastForm("lead")
	require.True(t, ok)
	assert.Equal(t, "led", past)

	present, ok := p.PresentForm("led")
	require.True(t, ok)
	assert.Equal(t, "lead", present)

	topics := p.ToolTopics("docker")
	assert.Contains(t, topics, "deployment")
	assert.Empty(t, p.ToolTopics("crayons"))
}

func TestProvider_FluffLongestFirst(t *testing.T) {
	p := NewProvider(Default())

	entries := p.FluffPhrasesLongestFirst()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, len(entries[i-1].Phrase), len(entries[i].Phrase))
	}
}
