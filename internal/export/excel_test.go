package export

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/ranking"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{100, 0},
		{80, 0},
		{79.99, 1},
		{60, 1},
		{45.5, 2},
		{40, 2},
		{39.99, 3},
		{0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %v", tt.score)
	}
}

func TestWriteHistory(t *testing.T) {
	entries := []types.HistoryEntry{
		{
			ID:             uuid.New(),
			JobTitle:       "Backend Engineer",
			Company:        "Acme",
			ResumeFilename: "cv.pdf",
			ATSScore:       72.5,
			MissingSkills:  []string{"kubernetes"},
			MatchingSkills: []string{"go", "postgresql"},
			AnalyzedAt:     time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			JobTitle:       "Data Scientist",
			Company:        "Initech",
			ResumeFilename: "cv.pdf",
			ATSScore:       31,
			MissingSkills:  []string{"pytorch", "sql"},
			MatchingSkills: []string{},
			AnalyzedAt:     time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Analyzed At", "Job Title", "Company", "Resume", "ATS Score", "Matching Skills", "Missing Skills"}, rows[0])
	assert.Equal(t, "2024-03-01 10:30:00", rows[1][0])
	assert.Equal(t, "Backend Engineer", rows[1][1])
	assert.Equal(t, "72.5", rows[1][4])
	assert.Equal(t, "go, postgresql", rows[1][5])
	assert.Equal(t, "pytorch, sql", rows[2][6])

	// Rows carry band styling
	strong, err := f.GetCellStyle(historySheet, "A2")
	require.NoError(t, err)
	weak, err := f.GetCellStyle(historySheet, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, strong, weak)
}

func TestWriteHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestWriteRanking(t *testing.T) {
	ranked := []ranking.Ranked{
		{
			Job: "platform.txt",
			Result: &types.AnalysisResult{
				ATSScore:       84,
				MissingSkills:  []string{},
				ScoreBreakdown: types.ScoreBreakdown{Semantic: 0.9, Lexical: 0.7, Keyword: 1},
			},
			Notes: "Strong skill match",
		},
		{
			Job: "frontend.txt",
			Result: &types.AnalysisResult{
				ATSScore:       50,
				MissingSkills:  []string{"react", "typescript"},
				ScoreBreakdown: types.ScoreBreakdown{Semantic: 0.6, Lexical: 0.3, Keyword: 0.5},
			},
			Notes: "Moderate skill match; 2 missing",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, "cv.pdf", ranked))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{summarySheet, rankingSheet}, f.GetSheetList())

	rows, err := f.GetRows(rankingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "platform.txt", rows[1][1])
	assert.Equal(t, "0.900", rows[1][3])
	assert.Equal(t, "react, typescript", rows[2][6])

	best, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "platform.txt", best)
	avg, err := f.GetCellValue(summarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "67.00", avg)
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveFile(filepath.Join(dir, "history"), func(w io.Writer) error {
		return WriteHistory(w, nil)
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "history.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	_ = f.Close()
}

func TestSaveFile_BadDirectory(t *testing.T) {
	_, err := SaveFile(filepath.Join(t.TempDir(), "missing", "out.xlsx"), func(w io.Writer) error {
		return WriteHistory(w, nil)
	})
	assert.Error(t, err)
}
