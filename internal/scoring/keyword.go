package scoring

import "github.com/jonathan/ats-analyzer/internal/skills"

// KeywordOverlap returns the share of job skills also found in the resume.
// An empty job skill set yields 0.
func KeywordOverlap(resumeSkills, jobSkills skills.Set) float64 {
	if jobSkills.Len() == 0 {
		return 0
	}
	return float64(resumeSkills.Intersect(jobSkills).Len()) / float64(jobSkills.Len())
}
