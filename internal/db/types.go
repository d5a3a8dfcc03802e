package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// DefaultHistoryLimit is the number of analyses returned when no limit is given
const DefaultHistoryLimit = 10

// MaxHistoryLimit caps a single history query
const MaxHistoryLimit = 500

// AnalysisRecord is everything persisted for one analysis: the resume, the job
// description and the result.
type AnalysisRecord struct {
	ResumeFilename string
	ResumeText     string
	ResumeSkills   []string

	JobTitle       string
	Company        string
	JobDescription string
	JobURL         string
	JobSkills      []string

	Result *types.AnalysisResult
}

// SavedAnalysis holds the identifiers assigned by SaveAnalysis
type SavedAnalysis struct {
	ID         uuid.UUID `json:"id"`
	ResumeID   uuid.UUID `json:"resume_id"`
	JobID      uuid.UUID `json:"job_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

func (r *AnalysisRecord) validate() error {
	if r == nil || r.Result == nil {
		return errors.New("analysis record has no result")
	}
	if r.ResumeText == "" {
		return errors.New("analysis record has no resume text")
	}
	if r.JobDescription == "" {
		return errors.New("analysis record has no job description")
	}
	return nil
}

// clampLimit applies the default and maximum to a requested history size
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}
