// Package planning turns detected weaknesses and declared issues into an
// ordered, bounded list of transformation hints for the generator.
package planning

import (
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
)

// VerbHit is one weak verb found in the original text, with its chosen upgrade
type VerbHit struct {
	From    string
	To      string
	Context string
	Start   int
}

// DetectWeakVerbs scans the text for weak verbs, longest match first, so
// "was in charge of" wins over any shorter verb it contains. The upgrade is
// picked by a context-hint lookup over the surrounding text, falling back
// to the first listed upgrade.
func DetectWeakVerbs(text string, lex *config.Provider) []VerbHit {
	lower := strings.ToLower(text)
	var hits []VerbHit
	var occupied []span

	for _, verb := range lex.WeakVerbsLongestFirst() {
		start := findPhrase(lower, verb, occupied)
		if start < 0 {
			continue
		}

		up, ok := lex.VerbUpgrade(verb)
		if !ok {
			continue
		}

		// Hint keys are visited in sorted order so planning stays deterministic.
		to := up.Default
		context := ""
		for _, keyword := range sortedKeys(up.ContextHints) {
			if evidence.ContainsTerm(text, keyword) {
				to = up.ContextHints[keyword]
				context = keyword
				break
			}
		}

		hits = append(hits, VerbHit{From: verb, To: to, Context: context, Start: start})
		occupied = append(occupied, span{start, start + len(verb)})
	}

	sortByStart(hits)
	return hits
}

func sortByStart(hits []VerbHit) {
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Start < hits[j-1].Start; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}
