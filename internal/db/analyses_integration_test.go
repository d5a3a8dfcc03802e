//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func cleanupAnalysis(t *testing.T, db *DB, saved *SavedAnalysis) {
	t.Helper()
	ctx := context.Background()
	_, _ = db.pool.Exec(ctx, "DELETE FROM analysis_results WHERE id = $1", saved.ID)
	_, _ = db.pool.Exec(ctx, "DELETE FROM resumes WHERE id = $1", saved.ResumeID)
	_, _ = db.pool.Exec(ctx, "DELETE FROM job_descriptions WHERE id = $1", saved.JobID)
}

func TestIntegration_SaveAndListHistory(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	// EnsureSchema is idempotent
	require.NoError(t, db.EnsureSchema(ctx))

	rec := &AnalysisRecord{
		ResumeFilename: "resume.txt",
		ResumeText:     "Python and React developer with AWS",
		ResumeSkills:   []string{"aws", "python", "react"},
		JobTitle:       "Integration Test Role " + uuid.NewString(),
		Company:        "Test Corp",
		JobDescription: "Looking for Python, React, AWS, Kubernetes",
		JobSkills:      []string{"aws", "kubernetes", "python", "react"},
		Result: &types.AnalysisResult{
			ATSScore:        62.5,
			MissingSkills:   []string{"kubernetes"},
			MatchingSkills:  []string{"aws", "python", "react"},
			ResumeSkills:    []string{"aws", "python", "react"},
			Recommendations: []string{"Consider adding these skills: kubernetes"},
			ScoreBreakdown:  types.ScoreBreakdown{Semantic: 0.7, Lexical: 0.4, Keyword: 0.75},
		},
	}

	saved, err := db.SaveAnalysis(ctx, rec)
	require.NoError(t, err)
	defer cleanupAnalysis(t, db, saved)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.WithinDuration(t, time.Now(), saved.AnalyzedAt, time.Minute)

	history, err := db.ListHistory(ctx, 10)
	require.NoError(t, err)

	var found *types.HistoryEntry
	for i := range history {
		if history[i].ID == saved.ID {
			found = &history[i]
		}
	}
	require.NotNil(t, found, "saved analysis should appear in history")
	assert.Equal(t, rec.JobTitle, found.JobTitle)
	assert.Equal(t, "Test Corp", found.Company)
	assert.Equal(t, "resume.txt", found.ResumeFilename)
	assert.Equal(t, 62.5, found.ATSScore)
	assert.Equal(t, []string{"kubernetes"}, found.MissingSkills)

	got, err := db.GetAnalysis(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Result.Recommendations, got.Recommendations)
	assert.Equal(t, rec.Result.ScoreBreakdown, got.ScoreBreakdown)
	assert.Equal(t, rec.ResumeSkills, got.ResumeSkills)
}

func TestIntegration_GetAnalysis_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	got, err := db.GetAnalysis(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIntegration_SaveAnalysis_RejectsInvalidScore(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	rec := &AnalysisRecord{
		ResumeFilename: "bad.txt",
		ResumeText:     "text",
		JobTitle:       "Bad",
		Company:        "Bad",
		JobDescription: "job",
		Result:         &types.AnalysisResult{ATSScore: 150},
	}
	_, err := db.SaveAnalysis(ctx, rec)
	require.Error(t, err)

	// The transaction rolled back, so no orphan job description remains
	var count int
	require.NoError(t, db.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM job_descriptions WHERE title = 'Bad' AND description = 'job'").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestIntegration_DeleteAnalysesBefore(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	n, err := db.DeleteAnalysesBefore(context.Background(), time.Unix(0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
