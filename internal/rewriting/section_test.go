package rewriting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-refiner/internal/types"
)

func TestImproveSection_PreservesLineOrder(t *testing.T) {
	// The exhausted mock echoes every line back, so each result is the
	// validated original and ordering is the only thing under test.
	engine := newTestEngine(t, NewMockGenerator())

	lines := []string{
		"Developed the billing API",
		"Migrated the reporting database",
		"Shipped the ingestion service",
		"Reduced deploy times across the platform",
	}
	result, err := engine.ImproveSection(context.Background(), types.SectionRequest{
		Lines:       lines,
		Kind:        types.KindExperience,
		Concurrency: 3,
	})
	require.NoError(t, err)

	require.Len(t, result.Lines, len(lines))
	for i, line := range lines {
		assert.Equal(t, line, result.Lines[i].Original, "line %d out of order", i)
		assert.Equal(t, line, result.Lines[i].Improved)
		assert.True(t, result.Lines[i].Validation.Passed)
	}
	assert.NotEmpty(t, result.RequestID)
}

func TestImproveSection_UnifiesTense(t *testing.T) {
	engine := newTestEngine(t, NewMockGenerator())

	result, err := engine.ImproveSection(context.Background(), types.SectionRequest{
		Lines: []string{
			"Developed the billing API",
			"Shipped the ingestion service",
			"Build dashboards for finance",
		},
		Kind: types.KindExperience,
	})
	require.NoError(t, err)

	assert.Equal(t, "past", result.DominantTense)
	assert.Equal(t, "Built dashboards for finance", result.Lines[2].Improved)
	assert.NotEmpty(t, result.Notes)
}

func TestImproveSection_EmptyRejected(t *testing.T) {
	engine := newTestEngine(t, NewMockGenerator())

	_, err := engine.ImproveSection(context.Background(), types.SectionRequest{
		Kind: types.KindExperience,
	})
	require.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestImproveSection_BadLineSurfacesError(t *testing.T) {
	engine := newTestEngine(t, NewMockGenerator())

	_, err := engine.ImproveSection(context.Background(), types.SectionRequest{
		Lines: []string{"Developed the billing API", "x"},
		Kind:  types.KindExperience,
	})
	require.Error(t, err, "a line below the minimum length fails the whole section")
}
