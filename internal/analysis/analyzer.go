// Package analysis runs one resume/job comparison end to end and turns the result
// into advice.
package analysis

import (
	"context"

	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/skills"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Analyzer wires normalization, skill extraction, scoring and recommendations.
// It is immutable and safe for concurrent use.
type Analyzer struct {
	scorer    *scoring.Scorer
	extractor *skills.Extractor
}

// NewAnalyzer builds an Analyzer. A nil extractor gets the default pipeline.
func NewAnalyzer(scorer *scoring.Scorer, extractor *skills.Extractor) *Analyzer {
	if extractor == nil {
		extractor = skills.NewExtractor()
	}
	return &Analyzer{scorer: scorer, extractor: extractor}
}

// Extractor returns the skill extractor used by the analyzer.
func (a *Analyzer) Extractor() *skills.Extractor {
	return a.extractor
}

// Analyze scores resumeText against jobText. It never fails: unavailable model
// capabilities contribute 0 to the score.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) *types.AnalysisResult {
	resume := ingestion.Normalize(resumeText)
	job := ingestion.Normalize(jobText)

	resumeSkills := a.extractor.Extract(ctx, resume)
	jobSkills := a.extractor.Extract(ctx, job)

	breakdown := a.scorer.ScoreSkills(ctx, resume, job, resumeSkills, jobSkills)

	missing := jobSkills.Difference(resumeSkills).Sorted()
	matching := jobSkills.Intersect(resumeSkills).Sorted()

	return &types.AnalysisResult{
		ATSScore:        breakdown.Total,
		MissingSkills:   missing,
		MatchingSkills:  matching,
		ResumeSkills:    resumeSkills.Sorted(),
		Recommendations: Recommend(breakdown.Raw, missing),
		ScoreBreakdown: types.ScoreBreakdown{
			Semantic: breakdown.Semantic,
			Lexical:  breakdown.Lexical,
			Keyword:  breakdown.Keyword,
		},
	}
}
