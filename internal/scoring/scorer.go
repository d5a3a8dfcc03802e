package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/ats-analyzer/internal/skills"
)

// MaxScore is the upper bound of a blended score.
const MaxScore = 100.0

// Breakdown holds the sub-scores of one resume/job comparison. Sub-scores are in
// [0, 1]; Total is in [0, 100] rounded to two decimals.
type Breakdown struct {
	Semantic float64 `json:"semantic"`
	Lexical  float64 `json:"lexical"`
	Keyword  float64 `json:"keyword"`
	Raw      float64 `json:"-"` // clamped total before rounding
	Total    float64 `json:"total"`
}

// Scorer computes blended similarity scores. It is immutable after construction
// and safe for concurrent use.
type Scorer struct {
	embedder  Embedder
	extractor *skills.Extractor
	weights   Weights
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default blend weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// New builds a Scorer. A nil embedder disables the semantic sub-score; a nil
// extractor gets the default pattern and vocabulary pipeline.
func New(embedder Embedder, extractor *skills.Extractor, opts ...Option) (*Scorer, error) {
	s := &Scorer{
		embedder:  embedder,
		extractor: extractor,
		weights:   DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scorer weights: %w", err)
	}
	if s.extractor == nil {
		s.extractor = skills.NewExtractor()
	}
	return s, nil
}

// Weights returns the blend weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score extracts skills from both texts and returns the blended score.
func (s *Scorer) Score(ctx context.Context, resume, job string) Breakdown {
	return s.ScoreSkills(ctx, resume, job,
		s.extractor.Extract(ctx, resume),
		s.extractor.Extract(ctx, job))
}

// ScoreSkills returns the blended score using skill sets the caller already extracted.
func (s *Scorer) ScoreSkills(ctx context.Context, resume, job string, resumeSkills, jobSkills skills.Set) Breakdown {
	b := Breakdown{
		Semantic: SemanticSimilarity(ctx, s.embedder, resume, job),
		Lexical:  LexicalSimilarity(resume, job),
		Keyword:  KeywordOverlap(resumeSkills, jobSkills),
	}
	b.Raw = clamp(s.weights.blend(b.Semantic, b.Lexical, b.Keyword)*MaxScore, 0, MaxScore)
	b.Total = Round2(b.Raw)
	return b
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}
