// Package config provides the lexicon and threshold configuration for the
// planner, validator, and coherence passes.
package config

import (
	"sort"
	"strings"
)

// Provider is the compiled, read-only lookup surface built once per lexicon
// load. Reloading configuration means building a new Provider and swapping
// it at the call site; the Provider itself never mutates.
type Provider struct {
	lex *Lexicon

	weakVerbsByLength []string        // weak verbs sorted longest first
	fluffByLength     []fluffEntry    // all fluff phrases sorted longest first
	techTerms         map[string]bool // lower-cased tech terms
	stopWords         map[string]bool // lower-cased stop words
	scaleClaims       []string        // lower-cased, sorted longest first
	irregularPresent  map[string]string // past form -> present form
}

type fluffEntry struct {
	phrase   string
	category string
}

// NewProvider compiles a lexicon into its lookup structures
func NewProvider(lex *Lexicon) *Provider {
	p := &Provider{
		lex:              lex,
		techTerms:        make(map[string]bool, len(lex.TechTerms)),
		stopWords:        make(map[string]bool, len(lex.StopWords)),
		irregularPresent: make(map[string]string, len(lex.IrregularPast)),
	}

	for verb := range lex.WeakVerbs {
		p.weakVerbsByLength = append(p.weakVerbsByLength, strings.ToLower(verb))
	}
	sortLongestFirst(p.weakVerbsByLength)

	for _, cat := range FluffCategories {
		for _, phrase := range lex.Fluff[cat] {
			p.fluffByLength = append(p.fluffByLength, fluffEntry{
				phrase:   strings.ToLower(phrase),
				category: cat,
			})
		}
	}
	sort.SliceStable(p.fluffByLength, func(i, j int) bool {
		return len(p.fluffByLength[i].phrase) > len(p.fluffByLength[j].phrase)
	})

	for _, term := range lex.TechTerms {
		p.techTerms[strings.ToLower(term)] = true
	}
	for _, word := range lex.StopWords {
		p.stopWords[strings.ToLower(word)] = true
	}

	for _, claim := range lex.ScaleClaims {
		p.scaleClaims = append(p.scaleClaims, strings.ToLower(claim))
	}
	sortLongestFirst(p.scaleClaims)

	for present, past := range lex.IrregularPast {
		p.irregularPresent[strings.ToLower(past)] = strings.ToLower(present)
	}

	return p
}

// Lexicon returns the raw lexicon backing this provider
func (p *Provider) Lexicon() *Lexicon { return p.lex }

// Thresholds returns the configured numeric thresholds
func (p *Provider) Thresholds() Thresholds { return p.lex.Thresholds }

// WeakVerbsLongestFirst returns weak verbs sorted longest first, so a
// longest-match-first scan sees multi-word verbs before their prefixes
func (p *Provider) WeakVerbsLongestFirst() []string { return p.weakVerbsByLength }

// VerbUpgrade returns the upgrade entry for a weak verb
func (p *Provider) VerbUpgrade(verb string) (VerbUpgrade, bool) {
	up, ok := p.lex.WeakVerbs[strings.ToLower(verb)]
	return up, ok
}

// FluffPhrasesLongestFirst returns every fluff phrase with its category,
// sorted longest first
func (p *Provider) FluffPhrasesLongestFirst() []struct{ Phrase, Category string } {
	out := make([]struct{ Phrase, Category string }, len(p.fluffByLength))
	for i, e := range p.fluffByLength {
		out[i] = struct{ Phrase, Category string }{e.phrase, e.category}
	}
	return out
}

// RedundantReplacement returns the substitution text for a redundant phrase
func (p *Provider) RedundantReplacement(phrase string) string {
	return p.lex.RedundantReplacements[strings.ToLower(phrase)]
}

// IsTechTerm reports lexicon membership for a technology term
func (p *Provider) IsTechTerm(term string) bool {
	return p.techTerms[strings.ToLower(term)]
}

// IsStopWord reports whether a word is excluded from overlap scoring
func (p *Provider) IsStopWord(word string) bool {
	return p.stopWords[strings.ToLower(word)]
}

// ScaleClaimsLongestFirst returns scale-claim phrases sorted longest first
func (p *Provider) ScaleClaimsLongestFirst() []string { return p.scaleClaims }

// ToolTopics returns the context keywords that make a tool topically relevant
func (p *Provider) ToolTopics(term string) []string {
	return p.lex.ToolTopics[strings.ToLower(term)]
}

// PastForm returns the irregular past form of a present-tense verb
func (p *Provider) PastForm(present string) (string, bool) {
	past, ok := p.lex.IrregularPast[strings.ToLower(present)]
	return past, ok
}

// PresentForm returns the present form of an irregular past-tense verb
func (p *Provider) PresentForm(past string) (string, bool) {
	present, ok := p.irregularPresent[strings.ToLower(past)]
	return present, ok
}

// ATSSubstitutions returns the character substitution map for ATS safety
func (p *Provider) ATSSubstitutions() map[string]string {
	return p.lex.ATSSubstitutions
}

func sortLongestFirst(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		if len(values[i]) != len(values[j]) {
			return len(values[i]) > len(values[j])
		}
		return values[i] < values[j]
	})
}
