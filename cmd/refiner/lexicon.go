package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-refiner/internal/config"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Validate a lexicon file",
	Long:  "Validates a lexicon JSON file against the lexicon schema and threshold rules, then prints a summary. With no --lexicon flag it summarizes the embedded default.",
	RunE:  runLexicon,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(_ *cobra.Command, _ []string) error {
	var lex *config.Lexicon
	if lexiconFile == "" {
		lex = config.Default()
		fmt.Println("Using embedded default lexicon")
	} else {
		loaded, err := config.Load(lexiconFile)
		if err != nil {
			return fmt.Errorf("lexicon is invalid: %w", err)
		}
		lex = loaded
		fmt.Printf("Lexicon %s is valid\n", lexiconFile)
	}

	fluffCount := 0
	for _, phrases := range lex.Fluff {
		fluffCount += len(phrases)
	}

	fmt.Printf("  weak verbs:      %d\n", len(lex.WeakVerbs))
	fmt.Printf("  fluff phrases:   %d\n", fluffCount)
	fmt.Printf("  tech terms:      %d\n", len(lex.TechTerms))
	fmt.Printf("  scale claims:    %d\n", len(lex.ScaleClaims))
	fmt.Printf("  irregular verbs: %d\n", len(lex.IrregularPast))
	fmt.Printf("  max retries:     %d\n", lex.Thresholds.MaxRetries)
	fmt.Printf("  max length:      %.1fx original\n", lex.Thresholds.MaxLengthMultiplier)
	return nil
}
