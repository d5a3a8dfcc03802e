package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal word document containing the given paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	rels, err := zw.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
		ok       bool
	}{
		{"resume.pdf", FormatPDF, true},
		{"Resume.PDF", FormatPDF, true},
		{"cv.docx", FormatDOCX, true},
		{"notes.txt", FormatTXT, true},
		{"resume.doc", "", false},
		{"resume", "", false},
		{"archive.tar.gz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			format, ok := DetectFormat(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.ok, IsAllowedFile(tt.filename))
		})
	}
}

func TestExtract_TXT(t *testing.T) {
	text, err := Extract("resume.txt", []byte("Jane Doe\r\nPython   developer\n\n\n\nAWS"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython developer\n\nAWS", text)
}

func TestExtract_TXTInvalidUTF8(t *testing.T) {
	text, err := Extract("resume.txt", []byte("caf\xe9 owner"))
	require.NoError(t, err)
	assert.Equal(t, "caf� owner", text)
}

func TestExtract_DOCX(t *testing.T) {
	data := buildDocx(t, "Jane Doe", "Go &amp; Kubernetes engineer")

	text, err := Extract("resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go & Kubernetes engineer")
	assert.NotContains(t, text, "<w:")
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		kind     ErrorKind
		message  string
	}{
		{"unsupported extension", "resume.exe", []byte("MZ"), KindUnsupportedFormat, MsgInvalidFileType},
		{"pdf without header", "resume.pdf", []byte("not a pdf"), KindUnreadable, MsgNoText},
		{"corrupt pdf", "resume.pdf", []byte("%PDF-1.4\ngarbage"), KindUnreadable, MsgNoText},
		{"docx without zip header", "resume.docx", []byte("plain text"), KindUnreadable, MsgNoText},
		{"pdf bytes named txt", "resume.txt", []byte("%PDF-1.7 binary"), KindUnreadable, MsgNoText},
		{"binary txt", "resume.txt", []byte{0x00, 0x01, 0x02, 0x03, 'a'}, KindUnreadable, MsgNoText},
		{"empty txt", "resume.txt", []byte("  \n\t "), KindEmpty, MsgNoText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.filename, tt.data)
			require.Error(t, err)

			var extErr *ExtractionError
			require.True(t, errors.As(err, &extErr))
			assert.Equal(t, tt.kind, extErr.Kind)
			assert.Equal(t, tt.message, extErr.UserMessage())
			assert.Contains(t, err.Error(), tt.filename)
		})
	}
}

func TestExtract_TextStartingWithPK(t *testing.T) {
	text, err := Extract("resume.txt", []byte("PKI and TLS specialist"))
	require.NoError(t, err)
	assert.Equal(t, "PKI and TLS specialist", text)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python and React developer"), 0644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Python and React developer", text)
}

func TestExtractFile_NotFound(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestExtractFile_Unsupported(t *testing.T) {
	_, err := ExtractFile("resume.rtf")

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, KindUnsupportedFormat, extErr.Kind)
}

func TestReadAllLimited(t *testing.T) {
	data, err := ReadAllLimited(bytes.NewReader([]byte("12345")), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	_, err = ReadAllLimited(bytes.NewReader([]byte("123456")), 5)
	assert.Error(t, err)
}
