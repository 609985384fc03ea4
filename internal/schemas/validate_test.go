package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneratorResponse(t *testing.T) {
	valid := []byte(`{
		"improved": "Accelerated API performance by 40%",
		"evidence_map": [{"improved_span": "40%", "evidence_ids": ["E1"]}],
		"reasoning": "stronger verb",
		"changes": {
			"stronger_verb": true,
			"added_metric": false,
			"more_specific": false,
			"removed_fluff": false,
			"tailored_to_role": false
		}
	}`)
	assert.NoError(t, ValidateGeneratorResponse(valid))
}

func TestValidateGeneratorResponse_Failures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Missing improved", `{"evidence_map": [], "reasoning": "x", "changes": {"stronger_verb": false, "added_metric": false, "more_specific": false, "removed_fluff": false, "tailored_to_role": false}}`},
		{"Missing evidence map", `{"improved": "x", "reasoning": "x", "changes": {"stronger_verb": false, "added_metric": false, "more_specific": false, "removed_fluff": false, "tailored_to_role": false}}`},
		{"Incomplete changes", `{"improved": "x", "evidence_map": [], "reasoning": "x", "changes": {"stronger_verb": false}}`},
		{"Map entry without ids", `{"improved": "x", "evidence_map": [{"improved_span": "x"}], "reasoning": "x", "changes": {"stronger_verb": false, "added_metric": false, "more_specific": false, "removed_fluff": false, "tailored_to_role": false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeneratorResponse([]byte(tt.doc))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
		})
	}
}

func TestValidateGeneratorResponse_MalformedDocument(t *testing.T) {
	err := ValidateGeneratorResponse([]byte("not json at all"))
	require.Error(t, err)
}

func TestValidateLexicon(t *testing.T) {
	valid := []byte(`{
		"weak_verbs": {"helped": {"default": "supported"}},
		"fluff": {"fillers": ["in order to"]},
		"scale_claims": ["massive"],
		"tech_terms": ["python"],
		"stop_words": ["the"],
		"irregular_past": {"lead": "led"},
		"thresholds": {
			"max_length_multiplier": 1.5,
			"min_line_length": 3,
			"max_line_length": 300,
			"overlap_threshold": 0.4,
			"max_retries": 2,
			"max_surfaced_tools": 2,
			"adapter_timeout_seconds": 45
		}
	}`)
	assert.NoError(t, ValidateLexicon(valid))

	missingThresholds := []byte(`{
		"weak_verbs": {},
		"fluff": {},
		"scale_claims": [],
		"tech_terms": [],
		"stop_words": [],
		"irregular_past": {}
	}`)
	err := ValidateLexicon(missingThresholds)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
