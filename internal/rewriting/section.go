package rewriting

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-refiner/internal/coherence"
	"github.com/jonathan/resume-refiner/internal/types"
)

// defaultConcurrency bounds the per-section worker pool when the request
// does not specify one
const defaultConcurrency = 4

// ImproveSection rewrites every line of a section concurrently, then runs
// the tense and format coherence pass over the accepted texts. Result
// order always matches input order regardless of completion order.
func (e *Engine) ImproveSection(ctx context.Context, req types.SectionRequest) (*types.SectionResult, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, inputErrorFrom(err)
	}

	requestID := uuid.New().String()
	log := e.logger.With(zap.String("section_id", requestID))

	concurrency := req.Concurrency
	if concurrency == 0 {
		concurrency = defaultConcurrency
	}

	results := make([]*types.RewriteResult, len(req.Lines))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, line := range req.Lines {
		i, line := i, line
		group.Go(func() error {
			siblings := make([]string, 0, len(req.Lines)-1)
			for j, other := range req.Lines {
				if j != i {
					siblings = append(siblings, other)
				}
			}
			result, err := e.Improve(groupCtx, types.RewriteRequest{
				Text:                  line,
				Kind:                  req.Kind,
				Issues:                req.Issues,
				SiblingLines:          siblings,
				Skills:                req.Skills,
				Tools:                 req.Tools,
				TargetRole:            req.TargetRole,
				AllowResumeEnrichment: req.AllowResumeEnrichment,
			})
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Improved
	}

	unified, report := coherence.Unify(texts, e.lex)
	for i, r := range results {
		r.Improved = unified[i]
	}

	log.Info("section improved",
		zap.Int("lines", len(results)),
		zap.String("dominant_tense", string(report.DominantTense)),
		zap.Int("notes", len(report.Notes)))

	section := &types.SectionResult{
		RequestID:       requestID,
		DominantTense:   string(report.DominantTense),
		TenseConfidence: report.Confidence,
		Notes:           report.Notes,
	}
	for _, r := range results {
		section.Lines = append(section.Lines, *r)
	}
	return section, nil
}
