package evidence

import (
	"strings"
	"unicode"
)

// NormalizeTerms lower-cases and tokenizes values for fast membership tests.
// Multi-word values contribute both the whole phrase and its tokens.
func NormalizeTerms(values []string) []string {
	seen := make(map[string]bool)
	var terms []string

	add := func(term string) {
		term = strings.TrimSpace(strings.ToLower(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, value := range values {
		add(value)
		for _, token := range Tokenize(value) {
			add(token)
		}
	}

	return terms
}

// Tokenize splits text into lower-cased word tokens, keeping characters
// that commonly occur inside technology names (+, #, .). Trailing periods
// are sentence punctuation, not part of the token, so "Docker." yields
// "docker" while "node.js" and ".net" keep their dots.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '.':
			return false
		}
		return true
	})

	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		token = strings.TrimRight(token, ".")
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ContainsTerm reports whether text contains term as a whole token,
// case-insensitively. Multi-word terms match as token subsequences.
func ContainsTerm(text, term string) bool {
	textTokens := Tokenize(text)
	termTokens := Tokenize(term)
	if len(termTokens) == 0 {
		return false
	}

	for i := 0; i+len(termTokens) <= len(textTokens); i++ {
		match := true
		for j, tt := range termTokens {
			if textTokens[i+j] != tt {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
