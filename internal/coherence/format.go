package coherence

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-refiner/internal/config"
)

// Formatting note labels recorded when a structural change was applied
const (
	NoteWhitespaceCollapsed = "whitespace_collapsed"
	NoteATSSubstitution     = "ats_substitution"
	NoteNumberFormat        = "number_format"
	NoteCapitalizedFirst    = "capitalized_first_letter"
	NoteTrailingPunctuation = "trailing_punctuation_stripped"
)

var (
	spaceBeforePercent = regexp.MustCompile(`(\d)\s+%`)
	spaceAfterCurrency = regexp.MustCompile(`\$\s+(\d)`)
	lowerMagnitude     = regexp.MustCompile(`(\d)(k|m|b)\b`)
)

// NormalizeLine applies formatting normalization to a single line and
// reports which structural changes were made. Changes are never silent.
// Applying NormalizeLine to its own output yields no further changes.
func NormalizeLine(line string, lex *config.Provider) (string, []string) {
	var notes []string
	out := line

	// ATS-unsafe characters first, so later steps see plain ASCII.
	replaced := out
	for from, to := range lex.ATSSubstitutions() {
		replaced = strings.ReplaceAll(replaced, from, to)
	}
	if replaced != out {
		notes = append(notes, NoteATSSubstitution)
		out = replaced
	}

	collapsed := strings.Join(strings.Fields(out), " ")
	if collapsed != out {
		notes = append(notes, NoteWhitespaceCollapsed)
		out = collapsed
	}

	standardized := spaceBeforePercent.ReplaceAllString(out, "$1%")
	standardized = spaceAfterCurrency.ReplaceAllString(standardized, "$$$1")
	standardized = lowerMagnitude.ReplaceAllStringFunc(standardized, strings.ToUpper)
	if standardized != out {
		notes = append(notes, NoteNumberFormat)
		out = standardized
	}

	if capitalized := capitalizeFirst(out); capitalized != out {
		notes = append(notes, NoteCapitalizedFirst)
		out = capitalized
	}

	stripped := strings.TrimRight(out, ".,;:!")
	if stripped != out && stripped != "" {
		notes = append(notes, NoteTrailingPunctuation)
		out = stripped
	}

	return out, notes
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			if unicode.IsUpper(r) {
				return s
			}
			return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
		}
		if !unicode.IsSpace(r) {
			return s // leading digit or symbol, leave as is
		}
	}
	return s
}
