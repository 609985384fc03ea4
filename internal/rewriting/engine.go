package rewriting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/evidence"
	"github.com/jonathan/resume-refiner/internal/planning"
	"github.com/jonathan/resume-refiner/internal/types"
	"github.com/jonathan/resume-refiner/internal/validation"
)

// Engine runs the full improve pipeline for one line: boundary
// validation, ledger build, planning, and the bounded generate-validate
// retry loop with fallback. An Engine is safe for concurrent use.
type Engine struct {
	lex       *config.Provider
	generator Generator
	planner   *planning.Planner
	checker   *validation.Validator
	prompts   *PromptBuilder
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewEngine wires an engine from its parts. A nil logger disables logging.
func NewEngine(lex *config.Provider, gen Generator, builder *PromptBuilder, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		lex:       lex,
		generator: gen,
		planner:   planning.NewPlanner(lex),
		checker:   validation.NewValidator(lex),
		prompts:   builder,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Improve rewrites one line of resume text. It always returns a usable
// result on success paths: either a validated improvement or a fallback
// carrying the original text verbatim. Only malformed input or internal
// failures surface as errors.
func (e *Engine) Improve(ctx context.Context, req types.RewriteRequest) (*types.RewriteResult, error) {
	ledger, plan, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	log := e.logger.With(zap.String("request_id", requestID))

	thresholds := e.lex.Thresholds()
	maxAttempts := thresholds.MaxRetries + 1
	timeout := time.Duration(thresholds.AdapterTimeoutSeconds) * time.Second

	var criticals []types.ValidationItem
	attempts := 0

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &EngineError{Message: "request canceled", Cause: err}
		}
		attempts = attempt + 1

		prompt := e.prompts.Build(req.Text, plan, ledger, req.TargetRole, attempt, criticals)
		resp, err := e.generateOnce(ctx, prompt, timeout)
		if err != nil {
			// Transport failures and unparsable responses consume the
			// attempt; the next one retries with the same feedback.
			log.Warn("generation attempt failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		result := e.checker.Validate(req.Text, resp.Improved, ledger, resp.EvidenceMap)
		if result.Passed {
			warnings := result.Warnings()
			confidence := types.ConfidenceMedium
			if attempt == 0 && len(warnings) == 0 {
				confidence = types.ConfidenceHigh
			}
			changes := recomputeChanges(req.Text, resp.Improved, req.TargetRole, e.lex)
			log.Info("rewrite accepted",
				zap.Int("attempts", attempts),
				zap.Int("warnings", len(warnings)),
				zap.String("confidence", string(confidence)))
			return &types.RewriteResult{
				RequestID:          requestID,
				Original:           req.Text,
				Improved:           resp.Improved,
				Reasoning:          resp.Reasoning,
				Changes:            changes,
				EvidenceMap:        resp.EvidenceMap,
				Validation:         result,
				Confidence:         confidence,
				Attempts:           attempts,
				EstimatedScoreGain: estimateScoreGain(changes),
				NeedsUserInput:     plan.NeedsUserInput,
			}, nil
		}

		criticals = result.Criticals()
		log.Warn("candidate rejected",
			zap.Int("attempt", attempt),
			zap.Int("criticals", len(criticals)))
	}

	log.Info("falling back to original text", zap.Int("attempts", attempts))
	return fallbackResult(requestID, req.Text, attempts, plan.NeedsUserInput), nil
}

// Preview returns the evidence ledger and plan Improve would use for the
// request, without spending any generation calls. Both are derived
// deterministically, so a following Improve sees the same values.
func (e *Engine) Preview(req types.RewriteRequest) (*types.EvidenceLedger, *types.RewritePlan, error) {
	return e.prepare(req)
}

// prepare validates the request and derives its ledger and plan. The plan
// is built once per request; retries reuse it with stricter prompt wording.
func (e *Engine) prepare(req types.RewriteRequest) (*types.EvidenceLedger, *types.RewritePlan, error) {
	if err := e.checkRequest(req); err != nil {
		return nil, nil, err
	}

	ledger := req.Ledger
	if ledger == nil {
		built, err := evidence.BuildLedger(evidence.Request{
			Text:                  req.Text,
			Kind:                  req.Kind,
			SiblingLines:          req.SiblingLines,
			Skills:                req.Skills,
			Tools:                 req.Tools,
			AllowResumeEnrichment: req.AllowResumeEnrichment,
		})
		if err != nil {
			return nil, nil, &InputError{Fields: []FieldIssue{{Field: "text", Message: err.Error()}}}
		}
		ledger = built
	}

	plan := e.planner.Plan(req.Text, ledger, req.Issues, planning.Options{
		Kind:         req.Kind,
		TargetRole:   req.TargetRole,
		SiblingLines: req.SiblingLines,
	})
	return ledger, plan, nil
}

// generateOnce runs a single generation attempt under the adapter timeout
func (e *Engine) generateOnce(ctx context.Context, prompt PromptPair, timeout time.Duration) (*GeneratorResponse, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := e.generator.Generate(callCtx, prompt)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, &GenerationError{Message: "adapter call failed", Cause: err}
	}
	if resp == nil {
		return nil, &GenerationError{Message: "adapter returned no response"}
	}
	return resp, nil
}

// checkRequest enforces the request contract before any work starts
func (e *Engine) checkRequest(req types.RewriteRequest) error {
	err := e.validate.Struct(req)
	if err == nil {
		thresholds := e.lex.Thresholds()
		if len(req.Text) < thresholds.MinLineLength {
			return &InputError{Fields: []FieldIssue{{
				Field:   "text",
				Message: fmt.Sprintf("shorter than the %d character minimum", thresholds.MinLineLength),
			}}}
		}
		if len(req.Text) > thresholds.MaxLineLength {
			return &InputError{Fields: []FieldIssue{{
				Field:   "text",
				Message: fmt.Sprintf("longer than the %d character maximum", thresholds.MaxLineLength),
			}}}
		}
		return nil
	}

	return inputErrorFrom(err)
}

// inputErrorFrom converts validator failures into per-field input errors
func inputErrorFrom(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &EngineError{Message: "request validation failed", Cause: err}
	}
	issue := &InputError{}
	for _, fe := range verrs {
		issue.Fields = append(issue.Fields, FieldIssue{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		})
	}
	return issue
}

// fallbackResult builds the honest do-nothing result: the original text
// verbatim, trivially supported by the main-line evidence item.
func fallbackResult(requestID, original string, attempts int, prompts []types.UserPrompt) *types.RewriteResult {
	return &types.RewriteResult{
		RequestID: requestID,
		Original:  original,
		Improved:  original,
		Reasoning: "Could not improve this line without risking unsupported claims, so the original text was kept.",
		EvidenceMap: []types.EvidenceMapItem{{
			ImprovedSpan: original,
			EvidenceIDs:  []string{evidence.MainLineID},
		}},
		Validation:         types.ValidationResult{Passed: true},
		Confidence:         types.ConfidenceLow,
		Attempts:           attempts,
		FellBack:           true,
		EstimatedScoreGain: 0,
		NeedsUserInput:     prompts,
	}
}
