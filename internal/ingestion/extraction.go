package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported resume file format.
type Format string

const (
	// FormatPDF is a PDF document
	FormatPDF Format = "pdf"
	// FormatDOCX is an Office Open XML word document
	FormatDOCX Format = "docx"
	// FormatTXT is a plain text file
	FormatTXT Format = "txt"
)

// ErrorKind classifies extraction failures.
type ErrorKind string

const (
	// KindUnsupportedFormat means the file extension is not pdf, docx or txt
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	// KindUnreadable means the file could not be parsed as its declared format
	KindUnreadable ErrorKind = "unreadable"
	// KindEmpty means parsing succeeded but produced no text
	KindEmpty ErrorKind = "empty"
)

// Messages shown to users for extraction failures.
const (
	MsgInvalidFileType = "Invalid file type. Please upload PDF, DOCX, or TXT files."
	MsgNoText          = "Could not extract text from file"
)

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// binarySampleSize is how many leading bytes are inspected when sniffing text files.
const binarySampleSize = 512

// binaryThreshold is the fraction of control bytes above which data is treated as binary.
const binaryThreshold = 0.1

// ExtractionError describes why text could not be pulled from a file.
type ExtractionError struct {
	Filename string
	Kind     ErrorKind
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Filename, e.Kind, e.Cause)
	}
	return fmt.Sprintf("extract %s: %s", e.Filename, e.Kind)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message suitable for API responses.
func (e *ExtractionError) UserMessage() string {
	if e.Kind == KindUnsupportedFormat {
		return MsgInvalidFileType
	}
	return MsgNoText
}

// DetectFormat returns the format implied by the filename extension.
func DetectFormat(filename string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "pdf":
		return FormatPDF, true
	case "docx":
		return FormatDOCX, true
	case "txt":
		return FormatTXT, true
	default:
		return "", false
	}
}

// IsAllowedFile reports whether the filename has a supported extension.
func IsAllowedFile(filename string) bool {
	_, ok := DetectFormat(filename)
	return ok
}

// ExtractFile reads a resume from disk and returns its plain text.
func ExtractFile(path string) (string, error) {
	if !IsAllowedFile(path) {
		return "", &ExtractionError{Filename: filepath.Base(path), Kind: KindUnsupportedFormat}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return Extract(filepath.Base(path), data)
}

// Extract returns the plain text of an uploaded file. The format is chosen by
// extension; the content is checked against that format's signature.
func Extract(filename string, data []byte) (string, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return "", &ExtractionError{Filename: filename, Kind: KindUnsupportedFormat}
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatTXT:
		text, err = extractTXT(data)
	}
	if err != nil {
		return "", &ExtractionError{Filename: filename, Kind: KindUnreadable, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{Filename: filename, Kind: KindEmpty}
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", fmt.Errorf("missing PDF header")
	}

	// The pdf reader panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// A single bad page should not discard the rest of the document
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

func extractDOCX(data []byte) (string, error) {
	if !bytes.HasPrefix(data, zipMagic) {
		return "", fmt.Errorf("missing zip header")
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTag.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}

func extractTXT(data []byte) (string, error) {
	if isBinaryData(data) {
		return "", fmt.Errorf("file looks binary")
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

// isBinaryData reports whether data carries a PDF/ZIP signature or a high share
// of control bytes.
func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.HasPrefix(data, pdfMagic) || bytes.HasPrefix(data, zipMagic) {
		return true
	}

	sample := data[:min(binarySampleSize, len(data))]
	control := 0
	for _, b := range sample {
		if b < 32 && b != '\n' && b != '\r' && b != '\t' {
			control++
		}
	}
	return float64(control)/float64(len(sample)) > binaryThreshold
}

// ReadAllLimited reads at most limit bytes from r, failing when more remain.
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("upload exceeds %d bytes", limit)
	}
	return data, nil
}
