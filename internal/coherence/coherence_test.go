package coherence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-refiner/internal/config"
)

func testLexicon(t *testing.T) *config.Provider {
	t.Helper()
	return config.NewProvider(config.Default())
}

func TestDetectLineTense(t *testing.T) {
	lex := testLexicon(t)

	tests := []struct {
		name     string
		line     string
		expected Tense
	}{
		{"Regular past", "Developed the billing API", TensePast},
		{"Irregular past", "Led the platform team", TensePast},
		{"Irregular past built", "Built the ingestion service", TensePast},
		{"Irregular present", "Lead the platform team", TensePresent},
		{"Irregular present build", "Build dashboards for finance", TensePresent},
		{"Empty line", "", TenseUnknown},
		{"No verb cue", "Responsible, dependable, punctual", TenseUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLineTense(tt.line, lex), "DetectLineTense(%q)", tt.line)
		})
	}
}

func TestDominantTense(t *testing.T) {
	lex := testLexicon(t)

	tense, confidence := DominantTense([]string{
		"Developed the API",
		"Built the service",
		"Led the team",
		"Lead design reviews",
	}, lex)
	assert.Equal(t, TensePast, tense)
	assert.Equal(t, ConfidenceMedium, confidence, "3 of 4 lines agree")

	tense, confidence = DominantTense([]string{
		"Developed the API",
		"Built the service",
	}, lex)
	assert.Equal(t, TensePast, tense)
	assert.Equal(t, ConfidenceHigh, confidence)

	tense, confidence = DominantTense(nil, lex)
	assert.Equal(t, TenseUnknown, tense)
	assert.Equal(t, ConfidenceLow, confidence)
}

func TestConvertLineTense(t *testing.T) {
	lex := testLexicon(t)

	tests := []struct {
		name     string
		line     string
		target   Tense
		expected string
		changed  bool
	}{
		{"Irregular to past", "Lead team meetings", TensePast, "Led team meetings", true},
		{"Irregular build to past", "Build dashboards", TensePast, "Built dashboards", true},
		{"Regular to past", "Design data models", TensePast, "Designed data models", true},
		{"Final e to past", "Manage the roadmap", TensePast, "Managed the roadmap", true},
		{"Already past untouched", "Led team meetings", TensePast, "Led team meetings", false},
		{"Irregular to present", "Led team meetings", TensePresent, "Lead team meetings", true},
		{"Regular to present", "Designed data models", TensePresent, "Design data models", true},
		{"Already present untouched", "Lead team meetings", TensePresent, "Lead team meetings", false},
		{"Unknown target untouched", "Led team meetings", TenseUnknown, "Led team meetings", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ConvertLineTense(tt.line, tt.target, lex)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestConvertLineTense_Idempotent(t *testing.T) {
	lex := testLexicon(t)

	once, _ := ConvertLineTense("Lead team meetings", TensePast, lex)
	twice, changed := ConvertLineTense(once, TensePast, lex)
	assert.Equal(t, once, twice)
	assert.False(t, changed)
}

func TestNormalizeLine(t *testing.T) {
	lex := testLexicon(t)

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"Whitespace collapsed", "Built   the  service", "Built the service"},
		{"Smart punctuation replaced", "Cut costs — “significantly”", "Cut costs - \"significantly\""},
		{"Number spacing fixed", "Improved latency by 40 %", "Improved latency by 40%"},
		{"Magnitude upper-cased", "Handled $2m in volume", "Handled $2M in volume"},
		{"First letter capitalized", "built the service", "Built the service"},
		{"Trailing period stripped", "Built the service.", "Built the service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := NormalizeLine(tt.line, lex)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeLine_Idempotent(t *testing.T) {
	lex := testLexicon(t)

	lines := []string{
		"built   the  service.",
		"Improved latency by 40 %",
		"Handled $2m in volume — fast",
	}
	for _, line := range lines {
		once, _ := NormalizeLine(line, lex)
		twice, notes := NormalizeLine(once, lex)
		assert.Equal(t, once, twice)
		assert.Empty(t, notes)
	}
}

func TestUnify(t *testing.T) {
	lex := testLexicon(t)

	lines := []string{
		"Developed the billing API",
		"Built the ingestion service",
		"Lead design reviews",
	}
	unified, report := Unify(lines, lex)

	require.Len(t, unified, 3)
	assert.Equal(t, TensePast, report.DominantTense)
	assert.Equal(t, "Led design reviews", unified[2])
	assert.Contains(t, report.ConvertedLines, 2)
	assert.NotEmpty(t, report.Notes)
}

func TestUnify_UnknownLinesLeftAlone(t *testing.T) {
	lex := testLexicon(t)

	lines := []string{
		"Developed the billing API",
		"Python, SQL, Airflow",
	}
	unified, report := Unify(lines, lex)

	assert.Equal(t, TensePast, report.DominantTense)
	assert.Equal(t, "Python, SQL, Airflow", unified[1])
	assert.Empty(t, report.ConvertedLines)
}
