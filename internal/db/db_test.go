package db

import (
	"strings"
	"testing"

	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaStatements(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	for _, table := range []string{"resumes", "job_descriptions", "analysis_results"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", "schema statements must be idempotent")
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, clampLimit(0))
	assert.Equal(t, DefaultHistoryLimit, clampLimit(-3))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, MaxHistoryLimit, clampLimit(MaxHistoryLimit+1))
}

func TestJSONArray(t *testing.T) {
	data, err := jsonArray(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = jsonArray([]string{"aws", "python"})
	require.NoError(t, err)
	assert.Equal(t, `["aws","python"]`, string(data))
}

func TestParseJSONArray(t *testing.T) {
	assert.Equal(t, []string{}, parseJSONArray(nil))
	assert.Equal(t, []string{}, parseJSONArray([]byte("null")))
	assert.Equal(t, []string{}, parseJSONArray([]byte("{bad")))
	assert.Equal(t, []string{"go", "rust"}, parseJSONArray([]byte(`["go","rust"]`)))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	require.NotNil(t, nullIfEmpty("https://example.com"))
	assert.Equal(t, "https://example.com", *nullIfEmpty("https://example.com"))
}

func TestAnalysisRecord_Validate(t *testing.T) {
	valid := &AnalysisRecord{
		ResumeText:     "resume",
		JobDescription: "job",
		Result:         &types.AnalysisResult{},
	}
	assert.NoError(t, valid.validate())

	var nilRecord *AnalysisRecord
	assert.Error(t, nilRecord.validate())
	assert.Error(t, (&AnalysisRecord{ResumeText: "r", JobDescription: "j"}).validate())
	assert.Error(t, (&AnalysisRecord{JobDescription: "j", Result: &types.AnalysisResult{}}).validate())
	assert.Error(t, (&AnalysisRecord{ResumeText: "r", Result: &types.AnalysisResult{}}).validate())
}
