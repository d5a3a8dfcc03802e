package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLineRun    = regexp.MustCompile(`\n\n\n+`)
)

// CleanText tidies extracted text while keeping its line structure, so the stored
// resume stays readable. Scoring applies Normalize on top of this.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// CRLF and lone CR become LF
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// Document is a piece of source text together with where it came from.
type Document struct {
	Name       string    `json:"name"`               // file name or URL
	Text       string    `json:"text"`               // cleaned text
	Hash       string    `json:"hash"`               // SHA256 hex digest of Text
	IngestedAt time.Time `json:"ingested_at"`        // UTC
	Platform   string    `json:"platform,omitempty"` // job board, for URL sources
}

// NewDocument wraps cleaned text with its content hash and ingestion time.
func NewDocument(name, text string) *Document {
	return &Document{
		Name:       name,
		Text:       text,
		Hash:       ContentHash(text),
		IngestedAt: time.Now().UTC(),
	}
}

// ContentHash computes the SHA256 hex digest of content.
func ContentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// IngestFromFile extracts a resume or job description file into a Document.
func IngestFromFile(path string) (*Document, error) {
	text, err := ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(filepath.Base(path), text), nil
}

// IngestFromBytes extracts an uploaded file into a Document.
func IngestFromBytes(filename string, data []byte) (*Document, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	text, err := Extract(filename, data)
	if err != nil {
		return nil, err
	}
	return NewDocument(filename, text), nil
}
