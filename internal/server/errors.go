package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNoResume indicates /analyze was called before any upload in the session
type ErrNoResume struct{}

func (e *ErrNoResume) Error() string {
	return "Please upload a resume first"
}

// ErrAnalysisNotFound indicates no stored analysis has the requested id
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrJobFetch indicates the job description could not be retrieved from job_url
type ErrJobFetch struct {
	URL   string
	Cause error
}

func (e *ErrJobFetch) Error() string {
	return fmt.Sprintf("failed to fetch job description from %s: %v", e.URL, e.Cause)
}

func (e *ErrJobFetch) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrNoResume, *ingestion.ExtractionError:
		return http.StatusBadRequest
	case *ErrAnalysisNotFound:
		return http.StatusNotFound
	case *ErrJobFetch:
		return http.StatusBadGateway
	case *http.MaxBytesError:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the text placed in the {"error": ...} body for err.
func userMessage(err error) string {
	switch e := err.(type) {
	case *ErrValidation:
		return e.Message
	case *ErrNoResume:
		return e.Error()
	case *ErrAnalysisNotFound:
		return "Analysis not found"
	case *ErrJobFetch:
		return "Could not fetch job description from URL"
	case *ingestion.ExtractionError:
		return e.UserMessage()
	case *http.MaxBytesError:
		return "File too large"
	default:
		return "Internal server error"
	}
}

// fromValidator converts validator output into an ErrValidation for the first failing field.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrValidation{Field: "request", Message: err.Error()}
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "JobDescription" && fe.Tag() == "required_without":
		return &ErrValidation{Field: "job_description", Message: "Job description is required"}
	case fe.Tag() == "max":
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("%s is too long", fe.Field())}
	case fe.Tag() == "url":
		return &ErrValidation{Field: "job_url", Message: "Job URL is not a valid URL"}
	default:
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("%s is invalid", fe.Field())}
	}
}
