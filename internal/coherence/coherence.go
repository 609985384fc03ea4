package coherence

import (
	"fmt"

	"github.com/jonathan/resume-refiner/internal/config"
)

// Report records what the coherence pass did to a section
type Report struct {
	DominantTense  Tense    `json:"dominant_tense"`
	Confidence     string   `json:"confidence"`
	ConvertedLines []int    `json:"converted_lines,omitempty"`
	Notes          []string `json:"notes,omitempty"`
}

// Unify runs the full section coherence pass: dominant-tense detection,
// conversion of outlier lines, then formatting normalization across every
// line. Running Unify on already-unified lines yields no further changes.
func Unify(lines []string, lex *config.Provider) ([]string, Report) {
	out := make([]string, len(lines))
	copy(out, lines)

	dominant, confidence := DominantTense(out, lex)
	report := Report{DominantTense: dominant, Confidence: confidence}

	if dominant != TenseUnknown {
		for i, line := range out {
			tense := DetectLineTense(line, lex)
			if tense == dominant || tense == TenseUnknown {
				continue
			}
			converted, changed := ConvertLineTense(line, dominant, lex)
			if changed {
				report.ConvertedLines = append(report.ConvertedLines, i)
				report.Notes = append(report.Notes,
					fmt.Sprintf("line %d: converted to %s tense", i+1, dominant))
				out[i] = converted
			}
		}
	}

	for i, line := range out {
		normalized, notes := NormalizeLine(line, lex)
		out[i] = normalized
		for _, note := range notes {
			report.Notes = append(report.Notes, fmt.Sprintf("line %d: %s", i+1, note))
		}
	}

	return out, report
}
