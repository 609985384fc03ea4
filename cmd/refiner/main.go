// Package main provides the entry point for the resume-refiner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refiner",
	Short: "Evidence-grounded resume line rewriting",
	Long:  "Refiner improves resume lines and sections with an LLM while a fabrication validator certifies that every number, tool, employer, and scale claim in the output is backed by evidence from the resume itself.",
}

var (
	verboseOutput bool
	debugLogging  bool
	jsonLogging   bool
	lexiconFile   string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "Print formatted progress boxes")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogging, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&lexiconFile, "lexicon", "", "Path to a custom lexicon JSON file (defaults to the embedded lexicon)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
