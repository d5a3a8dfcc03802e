// Package types provides type definitions for structured data used throughout the ATS analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"
	"sort"
)

// AnalysisResult is the outcome of scoring one resume against one job description.
// Skill lists are sorted ascending and never nil.
type AnalysisResult struct {
	ATSScore        float64        `json:"ats_score"`
	MissingSkills   []string       `json:"missing_skills"`
	MatchingSkills  []string       `json:"matching_skills"`
	ResumeSkills    []string       `json:"resume_skills"`
	Recommendations []string       `json:"recommendations"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
}

// ScoreBreakdown exposes the unrounded sub-scores behind ATSScore, each in [0, 1].
type ScoreBreakdown struct {
	Semantic float64 `json:"semantic"`
	Lexical  float64 `json:"lexical"`
	Keyword  float64 `json:"keyword"`
}

// Validate checks the structural invariants of a result: score range and
// precision, sorted unique skill lists, and that missing and matching skills are
// disjoint with matching skills drawn from the resume.
func (r *AnalysisResult) Validate() error {
	if r.ATSScore < 0 || r.ATSScore > 100 || math.IsNaN(r.ATSScore) {
		return fmt.Errorf("ats_score %v out of range [0, 100]", r.ATSScore)
	}
	if math.Abs(r.ATSScore*100-math.Round(r.ATSScore*100)) > 1e-6 {
		return fmt.Errorf("ats_score %v has more than two decimals", r.ATSScore)
	}

	lists := map[string][]string{
		"missing_skills":  r.MissingSkills,
		"matching_skills": r.MatchingSkills,
		"resume_skills":   r.ResumeSkills,
		"recommendations": r.Recommendations,
	}
	for name, list := range lists {
		if list == nil {
			return fmt.Errorf("%s must not be null", name)
		}
	}
	for _, name := range []string{"missing_skills", "matching_skills", "resume_skills"} {
		if err := checkSortedUnique(name, lists[name]); err != nil {
			return err
		}
	}

	resume := toSet(r.ResumeSkills)
	matching := toSet(r.MatchingSkills)
	for _, s := range r.MissingSkills {
		if matching[s] {
			return fmt.Errorf("skill %q is both missing and matching", s)
		}
		if resume[s] {
			return fmt.Errorf("missing skill %q is present in resume skills", s)
		}
	}
	for _, s := range r.MatchingSkills {
		if !resume[s] {
			return fmt.Errorf("matching skill %q is absent from resume skills", s)
		}
	}

	for name, v := range map[string]float64{
		"semantic": r.ScoreBreakdown.Semantic,
		"lexical":  r.ScoreBreakdown.Lexical,
		"keyword":  r.ScoreBreakdown.Keyword,
	} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("score_breakdown.%s %v out of range [0, 1]", name, v)
		}
	}
	return nil
}

// JobSkills returns the job skill set reconstructed from the partition.
func (r *AnalysisResult) JobSkills() []string {
	out := make([]string, 0, len(r.MissingSkills)+len(r.MatchingSkills))
	out = append(out, r.MissingSkills...)
	out = append(out, r.MatchingSkills...)
	sort.Strings(out)
	return out
}

func checkSortedUnique(name string, list []string) error {
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			return fmt.Errorf("%s must be sorted and unique (at %q)", name, list[i])
		}
	}
	return nil
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, s := range list {
		set[s] = true
	}
	return set
}
