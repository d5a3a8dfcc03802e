package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Defaults applied when a request omits the job title or company.
const (
	DefaultJobTitle = "Job Position"
	DefaultCompany  = "Company"
)

// AnalyzeRequest is the body of POST /analyze. JobDescription may be omitted when
// JobURL points at a posting to fetch.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL,max=100000"`
	JobTitle       string `json:"job_title,omitempty" validate:"max=200"`
	Company        string `json:"company,omitempty" validate:"max=200"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize trims fields and fills in the default title and company.
func (r *AnalyzeRequest) Normalize() {
	r.JobDescription = strings.TrimSpace(r.JobDescription)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Company = strings.TrimSpace(r.Company)
	r.JobURL = strings.TrimSpace(r.JobURL)
	if r.JobTitle == "" {
		r.JobTitle = DefaultJobTitle
	}
	if r.Company == "" {
		r.Company = DefaultCompany
	}
}

// AnalyzeResponse is returned by POST /analyze.
type AnalyzeResponse struct {
	Success    bool            `json:"success"`
	AnalysisID *uuid.UUID      `json:"analysis_id"`
	Analysis   *AnalysisResult `json:"analysis"`
	JobTitle   string          `json:"job_title"`
	Company    string          `json:"company"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Success     bool     `json:"success"`
	Filename    string   `json:"filename"`
	Skills      []string `json:"skills"`
	TextPreview string   `json:"text_preview"`
}

// HistoryEntry is one persisted analysis as listed by GET /history.
type HistoryEntry struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"job_title"`
	Company        string    `json:"company"`
	ResumeFilename string    `json:"resume_filename"`
	ATSScore       float64   `json:"ats_score"`
	MissingSkills  []string  `json:"missing_skills"`
	MatchingSkills []string  `json:"matching_skills"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}

// SampleJob is a canned job description offered to try the analyzer.
type SampleJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}
