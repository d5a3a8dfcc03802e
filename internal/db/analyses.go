package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// -----------------------------------------------------------------------------
// Analysis Methods
// -----------------------------------------------------------------------------

// SaveAnalysis stores the job description, the resume and the analysis result in
// one transaction and returns the new identifiers
func (db *DB) SaveAnalysis(ctx context.Context, rec *AnalysisRecord) (*SavedAnalysis, error) {
	if err := rec.validate(); err != nil {
		return nil, err
	}

	resumeSkills, err := jsonArray(rec.ResumeSkills)
	if err != nil {
		return nil, err
	}
	jobSkills, err := jsonArray(rec.JobSkills)
	if err != nil {
		return nil, err
	}
	missing, err := jsonArray(rec.Result.MissingSkills)
	if err != nil {
		return nil, err
	}
	matching, err := jsonArray(rec.Result.MatchingSkills)
	if err != nil {
		return nil, err
	}
	recs, err := jsonArray(rec.Result.Recommendations)
	if err != nil {
		return nil, err
	}
	breakdown, err := json.Marshal(rec.Result.ScoreBreakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	saved := &SavedAnalysis{
		ID:       uuid.New(),
		ResumeID: uuid.New(),
		JobID:    uuid.New(),
	}

	err = pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_descriptions (id, title, company, description, source_url, required_skills)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			saved.JobID, rec.JobTitle, rec.Company, rec.JobDescription, nullIfEmpty(rec.JobURL), jobSkills,
		); err != nil {
			return fmt.Errorf("failed to insert job description: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO resumes (id, filename, content, content_hash, skills)
			 VALUES ($1, $2, $3, $4, $5)`,
			saved.ResumeID, rec.ResumeFilename, rec.ResumeText, ingestion.ContentHash(rec.ResumeText), resumeSkills,
		); err != nil {
			return fmt.Errorf("failed to insert resume: %w", err)
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO analysis_results (id, resume_id, job_id, ats_score, missing_skills,
			                               matching_skills, recommendations, score_breakdown)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING analyzed_at`,
			saved.ID, saved.ResumeID, saved.JobID, rec.Result.ATSScore, missing, matching, recs, breakdown,
		).Scan(&saved.AnalyzedAt); err != nil {
			return fmt.Errorf("failed to insert analysis result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return saved, nil
}

// ListHistory returns the most recent analyses, newest first
func (db *DB) ListHistory(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ar.id, jd.title, jd.company, r.filename, ar.ats_score,
		        ar.missing_skills, ar.matching_skills, ar.analyzed_at
		 FROM analysis_results ar
		 JOIN resumes r ON ar.resume_id = r.id
		 JOIN job_descriptions jd ON ar.job_id = jd.id
		 ORDER BY ar.analyzed_at DESC
		 LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	history := []types.HistoryEntry{}
	for rows.Next() {
		var e types.HistoryEntry
		var missingJSON, matchingJSON []byte
		if err := rows.Scan(&e.ID, &e.JobTitle, &e.Company, &e.ResumeFilename, &e.ATSScore,
			&missingJSON, &matchingJSON, &e.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.MissingSkills = parseJSONArray(missingJSON)
		e.MatchingSkills = parseJSONArray(matchingJSON)
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return history, nil
}

// GetAnalysis retrieves a stored analysis result by ID
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisResult, error) {
	var result types.AnalysisResult
	var missingJSON, matchingJSON, recsJSON, breakdownJSON, resumeSkillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT ar.ats_score, ar.missing_skills, ar.matching_skills, ar.recommendations,
		        ar.score_breakdown, r.skills
		 FROM analysis_results ar
		 JOIN resumes r ON ar.resume_id = r.id
		 WHERE ar.id = $1`,
		id,
	).Scan(&result.ATSScore, &missingJSON, &matchingJSON, &recsJSON, &breakdownJSON, &resumeSkillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	result.MissingSkills = parseJSONArray(missingJSON)
	result.MatchingSkills = parseJSONArray(matchingJSON)
	result.Recommendations = parseJSONArray(recsJSON)
	result.ResumeSkills = parseJSONArray(resumeSkillsJSON)
	if breakdownJSON != nil {
		_ = json.Unmarshal(breakdownJSON, &result.ScoreBreakdown)
	}
	return &result, nil
}

// DeleteAnalysesBefore removes analyses older than cutoff and returns how many were deleted
func (db *DB) DeleteAnalysesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_results WHERE analyzed_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete analyses: %w", err)
	}
	return result.RowsAffected(), nil
}

// jsonArray encodes a string list as a JSON array, never null
func jsonArray(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list: %w", err)
	}
	return data, nil
}

// parseJSONArray decodes a JSONB string array; malformed or null input yields an empty list
func parseJSONArray(data []byte) []string {
	out := []string{}
	if len(data) == 0 {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
