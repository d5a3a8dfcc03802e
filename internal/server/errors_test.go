package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "job_description", Message: "Job description is required"}
	assert.Equal(t, "validation error: job_description - Job description is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "Job description is required", userMessage(err))
}

func TestErrJobFetch_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &ErrJobFetch{URL: "https://example.com/job", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "https://example.com/job")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         &ErrValidation{Field: "job_url", Message: "bad"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "bad",
		},
		{
			name:        "no resume",
			err:         &ErrNoResume{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please upload a resume first",
		},
		{
			name:        "unsupported file",
			err:         &ingestion.ExtractionError{Filename: "a.exe", Kind: ingestion.KindUnsupportedFormat},
			wantStatus:  http.StatusBadRequest,
			wantMessage: ingestion.MsgInvalidFileType,
		},
		{
			name:        "empty file",
			err:         &ingestion.ExtractionError{Filename: "a.txt", Kind: ingestion.KindEmpty},
			wantStatus:  http.StatusBadRequest,
			wantMessage: ingestion.MsgNoText,
		},
		{
			name:        "not found",
			err:         &ErrAnalysisNotFound{ID: uuid.New()},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Analysis not found",
		},
		{
			name:        "job fetch",
			err:         &ErrJobFetch{URL: "https://example.com"},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Could not fetch job description from URL",
		},
		{
			name:        "too large",
			err:         &http.MaxBytesError{Limit: 10},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "File too large",
		},
		{
			name:        "unknown",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, HTTPStatus(tt.err))
			assert.Equal(t, tt.wantMessage, userMessage(tt.err))
		})
	}
}

func TestFromValidator(t *testing.T) {
	tests := []struct {
		name      string
		req       types.AnalyzeRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing description",
			req:       types.AnalyzeRequest{},
			wantField: "job_description",
			wantMsg:   "Job description is required",
		},
		{
			name:      "bad url",
			req:       types.AnalyzeRequest{JobURL: "nope"},
			wantField: "job_url",
			wantMsg:   "Job URL is not a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)

			var verr *ErrValidation
			require.ErrorAs(t, fromValidator(err), &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}
