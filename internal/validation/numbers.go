// Package validation re-derives facts from candidate text independently of
// the generator's claims and reports anything not traceable to evidence.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NumberToken is one numeric fact extracted from text, normalized to a
// canonical value so that format-equivalent representations compare equal
// ("$5K" and "$5,000" both canonicalize to 5000).
type NumberToken struct {
	Raw   string
	Value float64
	Start int
	End   int
}

// numberPattern captures digits with optional currency, comma grouping,
// decimal part, magnitude suffix, and percent/multiplier marker.
var numberPattern = regexp.MustCompile(
	`(?i)\$?\s?\d+(?:,\d{3})*(?:\.\d+)?\s?(?:k|m|b|bn|thousand|million|billion)?\s?(?:%|percent|x\b)?`)

// wordNumberPattern captures small word-form percentages ("forty percent").
// Word-form numbers without "percent" are left alone: canonicalization is
// suffix-aware but deliberately does not chase free-standing number words.
var wordNumberPattern = regexp.MustCompile(
	`(?i)\b(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)(?:[ -](one|two|three|four|five|six|seven|eight|nine))?\s+percent\b`)

var wordValues = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ExtractNumbers returns every numeric token in the text with its canonical
// value. Percentages keep their face value; ratios are not unified with
// percentages ("0.4" and "40%" are distinct facts).
func ExtractNumbers(text string) []NumberToken {
	var tokens []NumberToken

	for _, loc := range numberPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		// Reject matches glued to a following letter ("5 kg" must not
		// consume the magnitude suffix out of "kg").
		if loc[1] < len(text) && isWordByte(text[loc[1]]) && endsWithSuffixLetter(raw) {
			raw = trimTrailingSuffix(raw)
			if raw == "" {
				continue
			}
			loc[1] = loc[0] + len(raw)
		}

		value, ok := canonicalValue(raw)
		if !ok {
			continue
		}
		tokens = append(tokens, NumberToken{
			Raw:   strings.TrimSpace(raw),
			Value: value,
			Start: loc[0],
			End:   loc[1],
		})
	}

	for _, loc := range wordNumberPattern.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		tens := strings.ToLower(text[loc[2]:loc[3]])
		value := wordValues[tens]
		if loc[4] >= 0 {
			value += wordValues[strings.ToLower(text[loc[4]:loc[5]])]
		}
		tokens = append(tokens, NumberToken{
			Raw:   strings.TrimSpace(raw),
			Value: value,
			Start: loc[0],
			End:   loc[1],
		})
	}

	return tokens
}

// canonicalValue normalizes a raw numeric token to a single comparable value
func canonicalValue(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	for suffix, m := range map[string]float64{
		"billion": 1e9, "million": 1e6, "thousand": 1e3,
		"bn": 1e9, "b": 1e9, "m": 1e6, "k": 1e3,
	} {
		trimmed := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(s, "percent"), "%"), "x")
		trimmed = strings.TrimSpace(trimmed)
		if strings.HasSuffix(trimmed, suffix) {
			multiplier = m
			s = strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
			break
		}
	}

	s = strings.TrimSuffix(s, "percent")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSuffix(s, "x")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}

// sameValue compares canonical values with a relative epsilon
func sameValue(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*1e-9
}

// containsValue reports whether any token in the set has the given value
func containsValue(tokens []NumberToken, value float64) bool {
	for _, t := range tokens {
		if sameValue(t.Value, value) {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// endsWithSuffixLetter reports whether the match ends in a bare magnitude
// letter that may actually be the start of a longer word
func endsWithSuffixLetter(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasSuffix(s, "k") || strings.HasSuffix(s, "m") ||
		strings.HasSuffix(s, "b") || strings.HasSuffix(s, "x")
}

// trimTrailingSuffix drops a trailing magnitude letter and any space before it
func trimTrailingSuffix(raw string) string {
	s := strings.TrimRight(raw, "kKmMbBxX")
	return strings.TrimRight(s, " ")
}
