package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-refiner/internal/observability"
	"github.com/jonathan/resume-refiner/internal/types"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Improve a whole resume section and unify tense and formatting",
	Long:  "Improves every line of a section concurrently from a SectionRequest JSON file, then aligns tense and normalizes formatting across the accepted lines.",
	RunE:  runSection,
}

var (
	sectionInputFile  string
	sectionOutputFile string
	sectionAPIKey     string
	sectionDryRun     bool
)

func init() {
	sectionCmd.Flags().StringVarP(&sectionInputFile, "in", "i", "", "Path to SectionRequest JSON file (required)")
	sectionCmd.Flags().StringVarP(&sectionOutputFile, "out", "o", "", "Path to output SectionResult JSON file (required)")
	sectionCmd.Flags().StringVar(&sectionAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	sectionCmd.Flags().BoolVar(&sectionDryRun, "dry-run", false, "Use the echo generator instead of a model")

	if err := sectionCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := sectionCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(sectionCmd)
}

func runSection(_ *cobra.Command, _ []string) error {
	var req types.SectionRequest
	if err := readJSONFile(sectionInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()
	engine, closer, err := buildEngine(ctx, sectionAPIKey, sectionDryRun)
	if err != nil {
		return err
	}
	defer closer()

	result, err := engine.ImproveSection(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to improve section: %w", err)
	}

	if verboseOutput {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSectionResult(result)
	}

	if err := writeJSONFile(sectionOutputFile, result); err != nil {
		return err
	}

	fmt.Printf("Section result written to %s\n", sectionOutputFile)
	return nil
}
