package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/llm"
	"github.com/jonathan/resume-refiner/internal/observability"
	"github.com/jonathan/resume-refiner/internal/prompts"
	"github.com/jonathan/resume-refiner/internal/rewriting"
)

// loadLexicon loads the configured lexicon file, or the embedded default
func loadLexicon() (*config.Provider, error) {
	if lexiconFile == "" {
		return config.NewProvider(config.Default()), nil
	}
	lex, err := config.Load(lexiconFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return config.NewProvider(lex), nil
}

// buildEngine assembles the rewrite engine. With dryRun set it uses the
// echo generator and needs no API key; otherwise it dials Gemini. The
// returned closer releases the model client.
func buildEngine(ctx context.Context, apiKey string, dryRun bool) (*rewriting.Engine, func(), error) {
	lex, err := loadLexicon()
	if err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(jsonLogging, debugLogging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	lib, err := prompts.NewLibrary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load prompt library: %w", err)
	}

	modelConfig := llm.DefaultConfig()
	builder := rewriting.NewPromptBuilder(lib, modelConfig.Temperature)

	if dryRun {
		engine := rewriting.NewEngine(lex, rewriting.NewMockGenerator(), builder, logger)
		return engine, func() { _ = logger.Sync() }, nil
	}

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	client, err := llm.NewClient(ctx, modelConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	generator := rewriting.NewLLMGenerator(client, llm.TierStandard)
	engine := rewriting.NewEngine(lex, generator, builder, logger)
	closer := func() {
		_ = client.Close()
		_ = logger.Sync()
	}
	logger.Debug("engine ready", zap.String("model", client.GetModel(llm.TierStandard)))
	return engine, closer, nil
}

// readJSONFile reads and unmarshals a JSON input file
func readJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals v with indentation and writes it, creating the
// output directory first
func writeJSONFile(path string, v any) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
