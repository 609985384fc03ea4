package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/planning"
	"github.com/jonathan/resume-refiner/internal/types"
)

var digitPattern = regexp.MustCompile(`\d`)

// recomputeChanges re-derives the quality-change flags from the accepted
// text instead of trusting the generator's self-report, the same stance the
// validator takes toward the evidence map.
func recomputeChanges(original, improved, targetRole string, lex *config.Provider) types.ChangeFlags {
	return types.ChangeFlags{
		StrongerVerb:   leadingVerbImproved(original, improved, lex),
		AddedMetric:    quantified(improved) && !quantified(original),
		MoreSpecific:   len(planning.DetectWeakVerbs(improved, lex)) == 0 && !planning.DetectPassiveVoice(improved) && (planning.DetectPassiveVoice(original) || len(planning.DetectWeakVerbs(original, lex)) > 0),
		RemovedFluff:   len(planning.DetectFluff(original, lex)) > 0 && len(planning.DetectFluff(improved, lex)) == 0,
		TailoredToRole: targetRole != "" && evidence.ContainsTerm(improved, targetRole),
	}
}

// leadingVerbImproved reports that the line now opens with a different,
// non-weak verb
func leadingVerbImproved(original, improved string, lex *config.Provider) bool {
	origVerb := leadingWord(original)
	newVerb := leadingWord(improved)
	if newVerb == "" || newVerb == origVerb {
		return false
	}
	for _, weak := range lex.WeakVerbsLongestFirst() {
		if newVerb == weak || strings.HasPrefix(strings.ToLower(improved), weak) {
			return false
		}
	}
	return true
}

// quantified reports whether text carries numbers or percentages
func quantified(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%")
}

func leadingWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], ".,;:!?"))
}

// estimateScoreGain turns the recomputed change flags into a rough score
// delta. Fallback results always report zero gain.
func estimateScoreGain(changes types.ChangeFlags) float64 {
	gain := 0.0
	for _, changed := range []bool{
		changes.StrongerVerb,
		changes.AddedMetric,
		changes.MoreSpecific,
		changes.RemovedFluff,
		changes.TailoredToRole,
	} {
		if changed {
			gain += 0.1
		}
	}
	return gain
}
