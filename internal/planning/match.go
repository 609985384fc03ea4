package planning

import (
	"sort"
	"strings"
	"unicode"
)

// span is a half-open [start, end) character range in the scanned text
type span struct {
	start, end int
}

func (s span) overlaps(other span) bool {
	return s.start < other.end && other.start < s.end
}

// findPhrase locates the first word-boundary occurrence of phrase in lower
// that does not overlap any occupied span. Returns -1 if none.
func findPhrase(lower, phrase string, occupied []span) int {
	from := 0
	for {
		idx := strings.Index(lower[from:], phrase)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(phrase)

		if wordBoundary(lower, start, end) && !anyOverlap(span{start, end}, occupied) {
			return start
		}
		from = start + 1
		if from >= len(lower) {
			return -1
		}
	}
}

func anyOverlap(s span, occupied []span) bool {
	for _, o := range occupied {
		if s.overlaps(o) {
			return true
		}
	}
	return false
}

// wordBoundary reports whether [start, end) is not embedded inside a word
func wordBoundary(text string, start, end int) bool {
	if start > 0 {
		prev := rune(text[start-1])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return false
		}
	}
	if end < len(text) {
		next := rune(text[end])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
