package validation

import (
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
)

// overlapRatio computes the share of a span's significant words that also
// occur in the cited evidence texts. Stop-words carry no signal and are
// excluded on both sides.
func overlapRatio(span string, evidenceTexts []string, lex *config.Provider) float64 {
	spanWords := significantWords(span, lex)
	if len(spanWords) == 0 {
		return 1.0
	}

	evidenceWords := make(map[string]bool)
	for _, text := range evidenceTexts {
		for _, word := range significantWords(text, lex) {
			evidenceWords[word] = true
		}
	}

	matched := 0
	for _, word := range spanWords {
		if evidenceWords[word] {
			matched++
		}
	}
	return float64(matched) / float64(len(spanWords))
}

// substringMatch reports a direct or fuzzy substring relation between the
// span and any cited evidence text. Fuzzy means equal after dropping
// stop-words, so "reduced the costs" still matches "reduced costs".
func substringMatch(span string, evidenceTexts []string, lex *config.Provider) bool {
	spanNorm := normalizeSpace(span)
	spanFuzzy := strings.Join(significantWords(span, lex), " ")

	for _, text := range evidenceTexts {
		textNorm := normalizeSpace(text)
		if strings.Contains(textNorm, spanNorm) {
			return true
		}
		if spanFuzzy != "" {
			textFuzzy := strings.Join(significantWords(text, lex), " ")
			if strings.Contains(textFuzzy, spanFuzzy) {
				return true
			}
		}
	}
	return false
}

func significantWords(text string, lex *config.Provider) []string {
	var words []string
	for _, token := range evidence.Tokenize(text) {
		if !lex.IsStopWord(token) {
			words = append(words, token)
		}
	}
	return words
}

func normalizeSpace(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
