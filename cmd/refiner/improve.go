package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-refiner/internal/observability"
	"github.com/jonathan/resume-refiner/internal/types"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Improve one resume line with fabrication checking",
	Long:  "Improves a single resume line from a RewriteRequest JSON file. The result is either a validated improvement or a transparent fallback to the original text.",
	RunE:  runImprove,
}

var (
	improveInputFile  string
	improveOutputFile string
	improveAPIKey     string
	improveDryRun     bool
)

func init() {
	improveCmd.Flags().StringVarP(&improveInputFile, "in", "i", "", "Path to RewriteRequest JSON file (required)")
	improveCmd.Flags().StringVarP(&improveOutputFile, "out", "o", "", "Path to output RewriteResult JSON file (required)")
	improveCmd.Flags().StringVar(&improveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	improveCmd.Flags().BoolVar(&improveDryRun, "dry-run", false, "Use the echo generator instead of a model")

	if err := improveCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := improveCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(improveCmd)
}

func runImprove(_ *cobra.Command, _ []string) error {
	var req types.RewriteRequest
	if err := readJSONFile(improveInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()
	engine, closer, err := buildEngine(ctx, improveAPIKey, improveDryRun)
	if err != nil {
		return err
	}
	defer closer()

	var printer *observability.Printer
	if verboseOutput {
		printer = observability.NewPrinter(os.Stdout)
		ledger, plan, err := engine.Preview(req)
		if err != nil {
			return fmt.Errorf("failed to prepare request: %w", err)
		}
		printer.PrintEvidence(ledger)
		printer.PrintPlan(plan)
	}

	result, err := engine.Improve(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to improve line: %w", err)
	}

	if printer != nil {
		printer.PrintRewriteResult(result)
		printer.PrintValidation(&result.Validation)
	}

	if err := writeJSONFile(improveOutputFile, result); err != nil {
		return err
	}

	fmt.Printf("Rewrite result written to %s\n", improveOutputFile)
	return nil
}
