package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", " \n\t  ", ""},
		{"collapses whitespace", "Python   developer\n\nwith\tAWS", "Python developer with AWS"},
		{"keeps skill punctuation", "C++, C#, Node.js & scikit-learn", "C++ C# Node.js scikit-learn"},
		{"strips symbols", "Skills: (Go) / [Rust] * Docker!", "Skills Go Rust Docker"},
		{"drops underscores", "snake_case", "snake case"},
		{"trims edges", "  ...hello...  ", "...hello..."},
		{"keeps non-ascii letters", "Développeur Python", "Développeur Python"},
		{"folds ligatures", "ﬁnancial proﬁle", "financial profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_NoDoubleSpacesOrNewlines(t *testing.T) {
	inputs := []string{
		"Line one\r\nLine two\n\n\nLine three",
		"a , b ; c",
		"•  Led a team of 5  •  Shipped $2M product",
		" non breaking spaces ",
	}

	for _, input := range inputs {
		out := Normalize(input)
		assert.NotContains(t, out, "  ", "input %q", input)
		assert.NotContains(t, out, "\n", "input %q", input)
		assert.Equal(t, strings.TrimSpace(out), out, "input %q", input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "Senior  Go/Python engineer — Kubernetes, AWS (5+ yrs)"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}

func TestPreview(t *testing.T) {
	short := "short resume"
	assert.Equal(t, short, Preview(short))

	exact := strings.Repeat("a", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("é", PreviewLength+10)
	preview := Preview(long)
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.Equal(t, PreviewLength+3, len([]rune(preview)))
}
