package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary_LoadsRewritePrompts(t *testing.T) {
	lib, err := NewLibrary()
	require.NoError(t, err)

	keys := []string{
		"system", "improve-intro", "evidence-header", "evidence-item",
		"transformations-header", "constraints", "response-format",
		"retry-feedback", "retry-system", "target-role",
	}
	for _, key := range keys {
		prompt, err := lib.Get("rewrite.json", key)
		require.NoError(t, err, "missing prompt key %q", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownFileAndKey(t *testing.T) {
	lib, err := NewLibrary()
	require.NoError(t, err)

	_, err = lib.Get("nope.json", "system")
	assert.Error(t, err)

	_, err = lib.Get("rewrite.json", "nope")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Improve {{.Original}} toward {{.Goal}}", map[string]string{
		"Original": "the line",
		"Goal":     "clarity",
	})
	assert.Equal(t, "Improve the line toward clarity", out)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", nil)
	assert.Equal(t, "Hello {{.Name}}", out)
}
