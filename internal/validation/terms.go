package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
)

// companyAtPattern matches "at <Capitalized Words>" employer references
var companyAtPattern = regexp.MustCompile(
	`\bat ([A-Z][A-Za-z0-9&.-]*(?: [A-Z][A-Za-z0-9&.-]*)*)`)

// companySuffixPattern matches "<Name> Inc/Corp/LLC/Ltd" style references
var companySuffixPattern = regexp.MustCompile(
	`\b([A-Z][A-Za-z0-9&.-]*(?: [A-Z][A-Za-z0-9&.-]*)*),? (?:Inc|Corp|LLC|Ltd)\.?(?:\s|$|[,;.])`)

// ExtractTools returns the technology terms present in the text, by closed
// lexicon membership over word tokens. Order follows first occurrence.
func ExtractTools(text string, lex *config.Provider) []string {
	seen := make(map[string]bool)
	var tools []string
	for _, token := range evidence.Tokenize(text) {
		if lex.IsTechTerm(token) && !seen[token] {
			seen[token] = true
			tools = append(tools, token)
		}
	}
	return tools
}

// ExtractCompanies returns company-like capitalized phrases from the text,
// normalized to lower case with any legal suffix stripped
func ExtractCompanies(text string) []string {
	seen := make(map[string]bool)
	var companies []string

	add := func(name string) {
		name = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(name, ",")))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		companies = append(companies, name)
	}

	for _, m := range companyAtPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range companySuffixPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return companies
}

// ExtractScaleClaims returns configured scale-claim phrases found in the
// text, scanned the same way as tools: closed list, word boundaries.
func ExtractScaleClaims(text string, lex *config.Provider) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var claims []string

	for _, claim := range lex.ScaleClaimsLongestFirst() {
		if seen[claim] {
			continue
		}
		if phrasePresent(lower, claim) {
			seen[claim] = true
			claims = append(claims, claim)
		}
	}
	return claims
}

// phrasePresent reports a word-boundary occurrence of phrase in lower text
func phrasePresent(lower, phrase string) bool {
	from := 0
	for {
		idx := strings.Index(lower[from:], phrase)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(phrase)
		if boundaryOK(lower, start, end) {
			return true
		}
		from = start + 1
		if from >= len(lower) {
			return false
		}
	}
}

func boundaryOK(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}
