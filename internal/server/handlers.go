package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/db"
	"github.com/jonathan/ats-analyzer/internal/export"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/session"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// maxAnalyzeBody caps the JSON body of POST /analyze.
const maxAnalyzeBody = 1 << 20

// handleUpload accepts a resume file, extracts its text and skills, and keeps it in the session.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.typedErrorResponse(w, tooLarge)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		// A file input submitted without a selection arrives as an empty form value
		if _, ok := r.MultipartForm.Value["resume"]; ok {
			s.errorResponse(w, http.StatusBadRequest, "No file selected")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected")
		return
	}

	data, err := ingestion.ReadAllLimited(file, s.maxUploadBytes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error processing file: %v", err))
		return
	}

	doc, err := ingestion.IngestFromBytes(header.Filename, data)
	if err != nil {
		var extractErr *ingestion.ExtractionError
		if errors.As(err, &extractErr) {
			log.Printf("Upload rejected: %v", extractErr)
			s.typedErrorResponse(w, extractErr)
			return
		}
		log.Printf("Error processing file %s: %v", header.Filename, err)
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error processing file: %v", err))
		return
	}

	resumeSkills := s.analyzer.Extractor().Extract(r.Context(), ingestion.Normalize(doc.Text)).Sorted()

	sessionID := s.sessionID(w, r)
	s.sessions.Put(sessionID, &session.Resume{
		Filename:   header.Filename,
		Text:       doc.Text,
		Skills:     resumeSkills,
		UploadedAt: time.Now().UTC(),
	})

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{
		Success:     true,
		Filename:    header.Filename,
		Skills:      resumeSkills,
		TextPreview: ingestion.Preview(doc.Text),
	})
}

// handleAnalyze scores the session's resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalyzeBody)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if req.JobDescription == "" && req.JobURL == "" {
		s.typedErrorResponse(w, &ErrValidation{Field: "job_description", Message: "Job description is required"})
		return
	}
	if err := req.Validate(); err != nil {
		s.typedErrorResponse(w, fromValidator(err))
		return
	}

	resume, ok := s.sessionResume(r)
	if !ok {
		s.typedErrorResponse(w, &ErrNoResume{})
		return
	}

	jobText := req.JobDescription
	if jobText == "" {
		doc, err := ingestion.IngestFromURL(r.Context(), req.JobURL, ingestion.URLOptions{
			Fetcher:    s.fetcher,
			UseBrowser: s.useBrowser,
		})
		if err != nil {
			log.Printf("Job fetch failed for %s: %v", req.JobURL, err)
			s.typedErrorResponse(w, &ErrJobFetch{URL: req.JobURL, Cause: err})
			return
		}
		jobText = doc.Text
	}

	result := s.analyzer.Analyze(r.Context(), resume.Text, jobText)

	resp := types.AnalyzeResponse{
		Success:  true,
		Analysis: result,
		JobTitle: req.JobTitle,
		Company:  req.Company,
	}

	if s.store != nil {
		saved, err := s.store.SaveAnalysis(r.Context(), &db.AnalysisRecord{
			ResumeFilename: resume.Filename,
			ResumeText:     resume.Text,
			ResumeSkills:   result.ResumeSkills,
			JobTitle:       req.JobTitle,
			Company:        req.Company,
			JobDescription: jobText,
			JobURL:         req.JobURL,
			JobSkills:      result.JobSkills(),
			Result:         result,
		})
		if err != nil {
			// The caller still gets the analysis
			log.Printf("Failed to save analysis: %v", err)
		} else {
			resp.AnalysisID = &saved.ID
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHistory lists the most recent analyses.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history(r, db.DefaultHistoryLimit)
	if err != nil {
		log.Printf("Error loading history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error loading history")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"history": entries})
}

// handleHistoryExport returns the history as an .xlsx attachment.
func (s *Server) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history(r, db.MaxHistoryLimit)
	if err != nil {
		log.Printf("Error loading history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error loading history")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteHistory(&buf, entries); err != nil {
		log.Printf("Error exporting history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error exporting history")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="ats_history.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing export: %v", err)
	}
}

// handleGetAnalysis returns one stored analysis by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.typedErrorResponse(w, &ErrValidation{Field: "id", Message: "Invalid analysis id"})
		return
	}
	if s.store == nil {
		s.typedErrorResponse(w, &ErrAnalysisNotFound{ID: id})
		return
	}

	result, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.typedErrorResponse(w, fmt.Errorf("failed to get analysis %s: %w", id, err))
		return
	}
	if result == nil {
		s.typedErrorResponse(w, &ErrAnalysisNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "analysis": result})
}

// handleSampleJobs returns the canned job descriptions.
func (s *Server) handleSampleJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": analysis.SampleJobs()})
}

// history loads up to limit entries, honouring an optional ?limit= override.
// Without a store it is empty.
func (s *Server) history(r *http.Request, limit int) ([]types.HistoryEntry, error) {
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if s.store == nil {
		return []types.HistoryEntry{}, nil
	}
	entries, err := s.store.ListHistory(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	return entries, nil
}

// sessionID returns the request's session id, issuing a new cookie when absent or malformed.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(session.CookieName); err == nil && session.ValidID(c.Value) {
		return c.Value
	}
	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// sessionResume returns the resume uploaded in the request's session.
func (s *Server) sessionResume(r *http.Request) (*session.Resume, bool) {
	c, err := r.Cookie(session.CookieName)
	if err != nil || !session.ValidID(c.Value) {
		return nil, false
	}
	return s.sessions.Get(c.Value)
}
