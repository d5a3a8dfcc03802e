package ingestion

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n\t\n  ", ""},
		{"line endings", "a\r\nb\rc", "a\nb\nc"},
		{"inner spaces", "Go    and \t Rust", "Go and Rust"},
		{"blank line runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"non-breaking spaces", "Senior\u00a0\u00a0Engineer", "Senior Engineer"},
		{"trims lines", "  indented  \n  bullet  ", "indented\nbullet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Title\r\n\r\n\r\n  - item one  \n- item two"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestContentHash(t *testing.T) {
	h1 := ContentHash("same content")
	h2 := ContentHash("same content")
	h3 := ContentHash("different content")

	assert.Len(t, h1, 64)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestNewDocument(t *testing.T) {
	before := time.Now().UTC()
	doc := NewDocument("resume.txt", "Python developer")

	assert.Equal(t, "resume.txt", doc.Name)
	assert.Equal(t, "Python developer", doc.Text)
	assert.Equal(t, ContentHash("Python developer"), doc.Hash)
	assert.False(t, doc.IngestedAt.Before(before.Add(-time.Second)))
	assert.Empty(t, doc.Platform)
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Looking for a Go engineer\r\n"), 0644))

	doc, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "job.txt", doc.Name)
	assert.Equal(t, "Looking for a Go engineer", doc.Text)
}

func TestIngestFromBytes(t *testing.T) {
	doc, err := IngestFromBytes("resume.txt", []byte("Docker and Kubernetes"))
	require.NoError(t, err)
	assert.Equal(t, "Docker and Kubernetes", doc.Text)

	_, err = IngestFromBytes("", []byte("x"))
	assert.Error(t, err)
}
