// Package ingestion turns uploaded resumes and job postings into plain text ready for scoring.
package ingestion

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PreviewLength is the number of characters shown in upload previews.
const PreviewLength = 500

// Normalize flattens raw extracted text into a single line of skill-friendly tokens.
// Letters, digits and the characters '.', '-', '+', '#' are kept (they occur inside
// tokens such as "c++", "node.js" and "c#"); everything else becomes a space, and
// whitespace runs collapse to one space.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Fold compatibility forms first so PDF ligatures ("ﬁ") become plain letters
	text = norm.NFKC.String(text)

	var sb strings.Builder
	sb.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if !keepRune(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		sb.WriteRune(r)
	}

	return sb.String()
}

func keepRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', '-', '+', '#':
		return true
	}
	return false
}

// Preview returns the first PreviewLength characters of text, with "..." appended
// when the text was cut.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}
