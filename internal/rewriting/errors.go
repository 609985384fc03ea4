package rewriting

import (
	"fmt"
	"strings"
)

// InputError represents a malformed request, rejected before any planning
// begins, with per-field detail
type InputError struct {
	Fields []FieldIssue
}

// FieldIssue names one offending request field
type FieldIssue struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if len(e.Fields) == 0 {
		return "input error: invalid request"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("input error: %s", strings.Join(parts, "; "))
}

// GenerationError represents a failed generation attempt: transport
// failure, timeout, or an unparsable response. Recoverable; it consumes
// one retry slot and the loop continues.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// EngineError wraps unexpected internal failures with context and cause
// before they surface to the caller
type EngineError struct {
	Message string
	Cause   error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite engine error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rewrite engine error: %s", e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}
