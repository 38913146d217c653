// Package pipeline orchestrates one end-to-end analysis: scoring, gap
// analysis, and explanation building over an already-parsed resume and an
// already-ingested job description.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/explain"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer runs analyses against a fixed taxonomy and semantic strategy.
// Both are resolved once at startup and shared read-only, so a single
// Analyzer is safe for concurrent use; each Analyze call works on its own
// inputs and outputs only.
type Analyzer struct {
	taxonomy skills.Taxonomy
	strategy scoring.Strategy
}

// NewAnalyzer builds an Analyzer around the given taxonomy and semantic
// strategy.
func NewAnalyzer(taxonomy skills.Taxonomy, strategy scoring.Strategy) *Analyzer {
	return &Analyzer{taxonomy: taxonomy, strategy: strategy}
}

// Input is everything one analysis needs.
type Input struct {
	Resume         *types.ParsedResume
	JobDescription string
	FresherMode    bool
}

// Analyze computes scores, gaps, summary, and recommendation for one
// resume/job-description pair. Scoring and gap analysis are independent and
// run concurrently; both degrade rather than fail on low-information input,
// so the only error paths are programmer mistakes (nil resume).
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*types.AnalysisReport, error) {
	if in.Resume == nil {
		return nil, fmt.Errorf("analysis input has no resume")
	}

	var (
		scores types.MatchScores
		gaps   types.GapResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scores = scoring.ComputeMatch(gctx, a.strategy,
			in.Resume.RawText, in.JobDescription,
			in.Resume.YearsExperience, in.FresherMode)
		return nil
	})
	g.Go(func() error {
		gaps = skills.AnalyzeGaps(in.Resume.RawText, in.JobDescription, a.taxonomy)
		return nil
	})
	// Neither goroutine returns an error; Wait just joins them.
	_ = g.Wait()

	return &types.AnalysisReport{
		Scores:         scores,
		Gaps:           gaps,
		Summary:        explain.BuildSummary(scores, gaps, in.Resume.CGPA),
		Recommendation: explain.RecommendationText(gaps.Missing),
		Sections:       in.Resume.Sections,
	}, nil
}

// Taxonomy exposes the analyzer's taxonomy (read-only, for the API's
// taxonomy endpoint and the CLI taxonomy command).
func (a *Analyzer) Taxonomy() skills.Taxonomy {
	return a.taxonomy
}
