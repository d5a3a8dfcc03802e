package analysis

import "strings"

// Score thresholds for advice
const (
	restructureThreshold = 60.0
	keywordThreshold     = 40.0
)

// maxSuggestedSkills caps how many missing skills are listed in one recommendation.
const maxSuggestedSkills = 5

// Recommendation texts
const (
	RecRestructure = "Consider restructuring your resume to better match job requirements"
	RecAddSkills   = "Consider adding these skills: "
	RecKeywords    = "Use more keywords from the job description"
	RecQuantify    = "Quantify your achievements with numbers and metrics"
)

// Recommend maps a score and the missing skills to advice. Rules are evaluated
// independently; only the first five missing skills, in the given order, are
// named. The result is never nil.
func Recommend(score float64, missing []string) []string {
	recs := []string{}

	if score < restructureThreshold {
		recs = append(recs, RecRestructure)
	}
	if len(missing) > 0 {
		top := missing[:min(len(missing), maxSuggestedSkills)]
		recs = append(recs, RecAddSkills+strings.Join(top, ", "))
	}
	if score < keywordThreshold {
		recs = append(recs, RecKeywords, RecQuantify)
	}

	return recs
}
