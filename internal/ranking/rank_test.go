package ranking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/skills"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resume = "Backend engineer: Python, Django, PostgreSQL, AWS, Docker and Git. Agile team player."

func newAnalyzer(t *testing.T) *analysis.Analyzer {
	t.Helper()
	extractor := skills.NewExtractor()
	scorer, err := scoring.New(nil, extractor)
	require.NoError(t, err)
	return analysis.NewAnalyzer(scorer, extractor)
}

func TestRankJobs_OrdersByScore(t *testing.T) {
	jobs := []Job{
		{Name: "frontend", Text: "Angular and Vue developer with Swift experience"},
		{Name: "backend", Text: "Python Django PostgreSQL engineer on AWS with Docker"},
		{Name: "data", Text: "Python data science with pandas and numpy"},
	}

	ranked, err := RankJobs(context.Background(), newAnalyzer(t), resume, jobs, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "backend", ranked[0].Job)
	assert.Equal(t, "frontend", ranked[2].Job)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.ATSScore, ranked[i].Result.ATSScore)
	}
	assert.Contains(t, ranked[0].Notes, "Strong skill match")
}

func TestRankJobs_TiesBrokenByName(t *testing.T) {
	jobs := []Job{
		{Name: "b", Text: ""},
		{Name: "a", Text: ""},
		{Name: "c", Text: ""},
	}

	ranked, err := RankJobs(context.Background(), newAnalyzer(t), resume, jobs, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string{ranked[0].Job, ranked[1].Job, ranked[2].Job})
}

func TestRankJobs_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankJobs(ctx, newAnalyzer(t), resume, []Job{{Name: "x", Text: "python"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankJobs_Empty(t *testing.T) {
	ranked, err := RankJobs(context.Background(), newAnalyzer(t), resume, nil, 1)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("Go and Rust"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Python and SQL"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o600))

	jobs, err := LoadJobs([]string{dir})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a.txt", jobs[0].Name)
	assert.Equal(t, "Python and SQL", jobs[0].Text)
	assert.Equal(t, "b.txt", jobs[1].Name)
}

func TestLoadJobs_Errors(t *testing.T) {
	_, err := LoadJobs([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	_, err = LoadJobs([]string{t.TempDir()})
	assert.ErrorContains(t, err, "no job description files")
}

func TestGenerateNotes(t *testing.T) {
	tests := []struct {
		name     string
		result   types.AnalysisResult
		expected string
	}{
		{
			name:     "no matches",
			result:   types.AnalysisResult{},
			expected: "No skill matches",
		},
		{
			name: "strong match with wording overlap",
			result: types.AnalysisResult{
				MatchingSkills: []string{"aws", "python"},
				ScoreBreakdown: types.ScoreBreakdown{Keyword: 1, Lexical: 0.6},
			},
			expected: "Strong skill match (aws, python). Good keyword overlap",
		},
		{
			name: "weak match with missing skills",
			result: types.AnalysisResult{
				MatchingSkills: []string{"git"},
				MissingSkills:  []string{"go", "rust", "swift"},
				ScoreBreakdown: types.ScoreBreakdown{Keyword: 0.25, Lexical: 0.1},
			},
			expected: "Weak skill match (git). 3 missing. Some keyword overlap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateNotes(&tt.result))
		})
	}
}
