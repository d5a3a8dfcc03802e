// Package scoring blends semantic, lexical and keyword similarity into an ATS score.
package scoring

import (
	"fmt"
	"math"
)

// Default weights for the blended score
const (
	SemanticWeight = 0.4
	LexicalWeight  = 0.3
	KeywordWeight  = 0.3
)

// weightTolerance absorbs float error when checking that weights sum to 1.
const weightTolerance = 1e-9

// Weights sets how much each sub-score contributes to the total.
type Weights struct {
	Semantic float64 `json:"semantic"`
	Lexical  float64 `json:"lexical"`
	Keyword  float64 `json:"keyword"`
}

// DefaultWeights returns the 0.4 / 0.3 / 0.3 blend.
func DefaultWeights() Weights {
	return Weights{
		Semantic: SemanticWeight,
		Lexical:  LexicalWeight,
		Keyword:  KeywordWeight,
	}
}

// Validate checks that weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Lexical < 0 || w.Keyword < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	sum := w.Semantic + w.Lexical + w.Keyword
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("weights must sum to 1, got %.4f", sum)
	}
	return nil
}

func (w Weights) blend(semantic, lexical, keyword float64) float64 {
	return w.Semantic*semantic + w.Lexical*lexical + w.Keyword*keyword
}
