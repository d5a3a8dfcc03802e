package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// generateNotes creates a brief explanation of the ranking.
func generateNotes(result *types.AnalysisResult) string {
	var parts []string

	keyword := result.ScoreBreakdown.Keyword
	matched := result.MatchingSkills

	// Skill match description
	switch {
	case len(matched) == 0:
		parts = append(parts, "No skill matches")
	case keyword >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
	case keyword >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matched, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matched, ", ")))
	}

	if n := len(result.MissingSkills); n > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", n))
	}

	// Wording overlap description
	if result.ScoreBreakdown.Lexical >= 0.5 {
		parts = append(parts, "Good keyword overlap")
	} else if result.ScoreBreakdown.Lexical > 0 {
		parts = append(parts, "Some keyword overlap")
	}

	return strings.Join(parts, ". ")
}
