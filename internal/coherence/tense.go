// Package coherence post-processes a validated multi-line section: it
// detects the dominant verb tense, rewrites outlier lines, and applies
// formatting normalization uniformly across the section.
package coherence

import (
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
)

// Tense is a detected verb tense for a line or section
type Tense string

// Tense constants
const (
	// TensePast marks past-tense lines ("Built the pipeline")
	TensePast Tense = "past"
	// TensePresent marks present-tense lines ("Build the pipeline")
	TensePresent Tense = "present"
	// TenseUnknown marks lines with no recognizable verb cue
	TenseUnknown Tense = "unknown"
)

// Confidence tiers for the dominant-tense decision
const (
	ConfidenceHigh   = "high"   // at least 80% of lines agree
	ConfidenceMedium = "medium" // at least 60% of lines agree
	ConfidenceLow    = "low"
)

// DetectLineTense determines a line's tense from its sentence-initial verb
// when possible, falling back to counting past/present verb endings across
// the whole line.
func DetectLineTense(line string, lex *config.Provider) Tense {
	first := leadingWord(line)
	if first == "" {
		return TenseUnknown
	}

	// Sentence-initial cues win over the counting heuristic.
	if _, ok := lex.PresentForm(first); ok {
		return TensePast // first word is an irregular past form ("led", "built")
	}
	if _, ok := lex.PastForm(first); ok {
		return TensePresent // first word is an irregular present form ("lead", "build")
	}
	if looksPastRegular(first) {
		return TensePast
	}

	past, present := 0, 0
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ".,;:!?()")
		switch {
		case looksPastRegular(word):
			past++
		case strings.HasSuffix(word, "ing") && len(word) > 4:
			present++
		default:
			if _, ok := lex.PresentForm(word); ok {
				past++
			} else if _, ok := lex.PastForm(word); ok {
				present++
			}
		}
	}

	switch {
	case past > present:
		return TensePast
	case present > past:
		return TensePresent
	default:
		return TenseUnknown
	}
}

// DominantTense computes the section's dominant tense and a confidence
// tier based on how many lines agree with it.
func DominantTense(lines []string, lex *config.Provider) (Tense, string) {
	if len(lines) == 0 {
		return TenseUnknown, ConfidenceLow
	}

	past, present := 0, 0
	for _, line := range lines {
		switch DetectLineTense(line, lex) {
		case TensePast:
			past++
		case TensePresent:
			present++
		}
	}

	if past == 0 && present == 0 {
		return TenseUnknown, ConfidenceLow
	}

	dominant := TensePast
	votes := past
	if present > past {
		dominant = TensePresent
		votes = present
	}

	ratio := float64(votes) / float64(len(lines))
	switch {
	case ratio >= 0.8:
		return dominant, ConfidenceHigh
	case ratio >= 0.6:
		return dominant, ConfidenceMedium
	default:
		return dominant, ConfidenceLow
	}
}

// ConvertLineTense rewrites the leading verb of a line to the target tense.
// Mid-sentence verbs are left alone, which keeps repeated conversion
// idempotent. Returns the converted line and whether anything changed.
func ConvertLineTense(line string, target Tense, lex *config.Provider) (string, bool) {
	first := leadingWord(line)
	if first == "" || target == TenseUnknown {
		return line, false
	}

	var converted string
	switch target {
	case TensePast:
		if _, ok := lex.PresentForm(first); ok {
			return line, false // already an irregular past form
		}
		if looksPastRegular(first) {
			return line, false
		}
		converted = toPast(first, lex)
	case TensePresent:
		if _, ok := lex.PastForm(first); ok {
			return line, false // already an irregular present form
		}
		if past, ok := lex.PresentForm(first); ok {
			converted = past
		} else if looksPastRegular(first) {
			converted = toPresent(first)
		} else {
			return line, false
		}
	}

	if converted == "" || converted == first {
		return line, false
	}
	return replaceLeadingWord(line, converted), true
}

// toPast inflects a present-tense verb: irregular table first, then suffix
// rules (append "-ed", "-d" after a final "e", double a short final
// consonant).
func toPast(verb string, lex *config.Provider) string {
	if past, ok := lex.PastForm(verb); ok {
		return past
	}
	switch {
	case strings.HasSuffix(verb, "e"):
		return verb + "d"
	case strings.HasSuffix(verb, "y") && len(verb) > 2 && !isVowel(verb[len(verb)-2]):
		return verb[:len(verb)-1] + "ied"
	case needsDoubling(verb):
		return verb + string(verb[len(verb)-1]) + "ed"
	default:
		return verb + "ed"
	}
}

// toPresent strips a regular "-ed" ending, undoing doubling and "-ied"
func toPresent(verb string) string {
	switch {
	case strings.HasSuffix(verb, "ied"):
		return verb[:len(verb)-3] + "y"
	case strings.HasSuffix(verb, "ed") && len(verb) > 4 &&
		verb[len(verb)-3] == verb[len(verb)-4] && !isVowel(verb[len(verb)-3]):
		return verb[:len(verb)-3] // "planned" -> "plan"
	case strings.HasSuffix(verb, "ed"):
		stem := verb[:len(verb)-2]
		if needsFinalE(stem) {
			return stem + "e"
		}
		return stem
	default:
		return verb
	}
}

// looksPastRegular reports a regular past-tense ending
func looksPastRegular(word string) bool {
	return strings.HasSuffix(word, "ed") && len(word) > 3
}

// needsDoubling reports the consonant-vowel-consonant shape of short verbs
// that double the final consonant ("plan" -> "planned")
func needsDoubling(verb string) bool {
	n := len(verb)
	if n < 3 {
		return false
	}
	last, mid, before := verb[n-1], verb[n-2], verb[n-3]
	if isVowel(last) || !isVowel(mid) || isVowel(before) {
		return false
	}
	switch last {
	case 'w', 'x', 'y':
		return false
	}
	return n <= 4 // only short verbs double reliably without stress info
}

// needsFinalE restores the dropped "e" for stems that clearly require it
func needsFinalE(stem string) bool {
	for _, suffix := range []string{"c", "g", "v", "z", "u", "as", "is", "os", "at"} {
		if strings.HasSuffix(stem, suffix) {
			return true
		}
	}
	return false
}

func leadingWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], ".,;:!?()"))
}

// replaceLeadingWord swaps the first word, preserving its capitalization
func replaceLeadingWord(line, replacement string) string {
	trimmed := strings.TrimLeft(line, " \t")
	prefix := line[:len(line)-len(trimmed)]

	idx := strings.IndexAny(trimmed, " \t")
	var rest string
	original := trimmed
	if idx >= 0 {
		original = trimmed[:idx]
		rest = trimmed[idx:]
	}

	if original != "" && original[0] >= 'A' && original[0] <= 'Z' {
		replacement = strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return prefix + replacement + rest
}

func isVowel(b byte) bool {
	switch b | 0x20 {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
