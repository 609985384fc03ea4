package planning

import (
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/types"
)

// DetectFluff scans the text for fluff phrases across all seven categories,
// longest match first. Overlapping hits are deduplicated keeping the
// earliest, longest match. Redundant phrases carry a substitution; every
// other category is a plain deletion.
func DetectFluff(text string, lex *config.Provider) []types.FluffMatch {
	lower := strings.ToLower(text)
	var matches []types.FluffMatch
	var occupied []span

	for _, entry := range lex.FluffPhrasesLongestFirst() {
		start := findPhrase(lower, entry.Phrase, occupied)
		if start < 0 {
			continue
		}

		replacement := ""
		if entry.Category == config.CategoryRedundantPhrases {
			replacement = lex.RedundantReplacement(entry.Phrase)
		}

		matches = append(matches, types.FluffMatch{
			Phrase:      entry.Phrase,
			Category:    entry.Category,
			Replacement: replacement,
			Start:       start,
		})
		occupied = append(occupied, span{start, start + len(entry.Phrase)})
	}

	// Report in reading order regardless of scan order.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Start < matches[j-1].Start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	return matches
}
