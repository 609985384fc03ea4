// Package prompts provides the externalized LLM prompt templates.
// Templates are stored as JSON files embedded at compile time and parsed
// once into a Library value that is passed explicitly to its users; there
// is no package-level cache.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed *.json
var promptFiles embed.FS

// Library is the parsed set of prompt templates for one process
type Library struct {
	files map[string]map[string]string
}

// NewLibrary parses every embedded prompt file
func NewLibrary() (*Library, error) {
	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded prompt files: %w", err)
	}

	lib := &Library{files: make(map[string]map[string]string, len(entries))}
	for _, entry := range entries {
		data, err := promptFiles.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
		}

		var parsed map[string]string
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
		}
		lib.files[entry.Name()] = parsed
	}

	return lib, nil
}

// Get retrieves a prompt by filename and key
func (l *Library) Get(filename, key string) (string, error) {
	file, ok := l.files[filename]
	if !ok {
		return "", fmt.Errorf("prompt file %q not found", filename)
	}
	prompt, ok := file[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt, panicking if missing. Use only for prompts
// required at initialization time.
func (l *Library) MustGet(filename, key string) string {
	prompt, err := l.Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
