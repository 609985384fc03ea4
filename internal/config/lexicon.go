// Package config provides the lexicon and threshold configuration for the
// planner, validator, and coherence passes. The lexicon is loaded once at
// startup and passed explicitly into constructors; there are no
// process-wide mutable caches.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-refiner/internal/schemas"
)

//go:embed lexicon.json
var defaultLexiconJSON []byte

// Fluff phrase category names. Every category in a lexicon file must be one of these.
const (
	CategoryFillers             = "fillers"
	CategoryWeakDescriptors     = "weak_descriptors"
	CategoryRedundantPhrases    = "redundant_phrases"
	CategoryVaguePhrases        = "vague_phrases"
	CategoryHypeWords           = "hype_words"
	CategoryUnnecessaryAdverbs  = "unnecessary_adverbs"
	CategoryCliches             = "cliches"
)

// FluffCategories lists the recognized categories in scan order
var FluffCategories = []string{
	CategoryFillers,
	CategoryWeakDescriptors,
	CategoryRedundantPhrases,
	CategoryVaguePhrases,
	CategoryHypeWords,
	CategoryUnnecessaryAdverbs,
	CategoryCliches,
}

// VerbUpgrade holds the replacement choices for one weak verb.
// ContextHints maps a keyword found near the verb to a preferred upgrade;
// Default is used when no hint matches.
type VerbUpgrade struct {
	Default      string            `json:"default"`
	ContextHints map[string]string `json:"context_hints,omitempty"`
}

// Thresholds holds the numeric knobs for the rewrite engine
type Thresholds struct {
	MaxLengthMultiplier   float64 `json:"max_length_multiplier"`
	MinLineLength         int     `json:"min_line_length"`
	MaxLineLength         int     `json:"max_line_length"`
	OverlapThreshold      float64 `json:"overlap_threshold"`
	MaxRetries            int     `json:"max_retries"`
	MaxSurfacedTools      int     `json:"max_surfaced_tools"`
	AdapterTimeoutSeconds int     `json:"adapter_timeout_seconds"`
}

// Lexicon is the raw configuration schema as loaded from JSON.
// See lexicon.schema.json for the documented schema.
type Lexicon struct {
	WeakVerbs             map[string]VerbUpgrade `json:"weak_verbs"`
	Fluff                 map[string][]string    `json:"fluff"`
	RedundantReplacements map[string]string      `json:"redundant_replacements,omitempty"`
	ScaleClaims           []string               `json:"scale_claims"`
	TechTerms             []string               `json:"tech_terms"`
	StopWords             []string               `json:"stop_words"`
	ToolTopics            map[string][]string    `json:"tool_topics,omitempty"`
	IrregularPast         map[string]string      `json:"irregular_past"`
	ATSSubstitutions      map[string]string      `json:"ats_substitutions,omitempty"`
	Thresholds            Thresholds             `json:"thresholds"`
}

// Default returns the built-in lexicon. The embedded JSON is fixed at
// compile time, so a parse failure is a programming error.
func Default() *Lexicon {
	lex, err := parse(defaultLexiconJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return lex
}

// Load reads a lexicon from a JSON file, checks it against the documented
// schema, and validates its values.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return nil, fmt.Errorf("lexicon path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	return parse(data)
}

func parse(data []byte) (*Lexicon, error) {
	if err := schemas.ValidateLexicon(data); err != nil {
		return nil, fmt.Errorf("lexicon schema validation failed: %w", err)
	}

	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	if err := lex.Validate(); err != nil {
		return nil, err
	}

	return &lex, nil
}

// Validate checks that the lexicon has usable values
func (l *Lexicon) Validate() error {
	if len(l.WeakVerbs) == 0 {
		return fmt.Errorf("lexicon error: 'weak_verbs' must not be empty")
	}
	for verb, up := range l.WeakVerbs {
		if up.Default == "" {
			return fmt.Errorf("lexicon error: weak verb %q has no default upgrade", verb)
		}
	}

	known := make(map[string]bool, len(FluffCategories))
	for _, cat := range FluffCategories {
		known[cat] = true
	}
	for cat := range l.Fluff {
		if !known[cat] {
			return fmt.Errorf("lexicon error: unknown fluff category %q", cat)
		}
	}

	t := l.Thresholds
	if t.MaxLengthMultiplier <= 1.0 {
		return fmt.Errorf("lexicon error: 'max_length_multiplier' must be greater than 1.0")
	}
	if t.OverlapThreshold < 0 || t.OverlapThreshold > 1 {
		return fmt.Errorf("lexicon error: 'overlap_threshold' must be in [0, 1]")
	}
	if t.MaxRetries < 0 {
		return fmt.Errorf("lexicon error: 'max_retries' must be non-negative")
	}
	if t.MinLineLength < 0 || (t.MaxLineLength > 0 && t.MaxLineLength < t.MinLineLength) {
		return fmt.Errorf("lexicon error: line length bounds are inconsistent")
	}
	if t.MaxSurfacedTools < 0 {
		return fmt.Errorf("lexicon error: 'max_surfaced_tools' must be non-negative")
	}
	if t.AdapterTimeoutSeconds <= 0 {
		return fmt.Errorf("lexicon error: 'adapter_timeout_seconds' must be positive")
	}

	return nil
}
