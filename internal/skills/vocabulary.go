package skills

import (
	"context"
	"strings"
)

// vocabulary lists common skills matched by plain substring. It overlaps the pattern
// families on purpose; some entries ("data analysis", "agile") exist only here.
//
//nolint:gochecknoglobals
var vocabulary = []string{
	"python", "java", "javascript", "react", "angular", "node.js",
	"sql", "mongodb", "aws", "docker", "git", "machine learning",
	"data analysis", "project management", "agile", "scrum",
}

// VocabularySource adds each vocabulary entry that occurs anywhere in the text.
type VocabularySource struct {
	terms []string
}

// NewVocabularySource creates a source over the built-in vocabulary.
func NewVocabularySource() *VocabularySource {
	return &VocabularySource{terms: append([]string(nil), vocabulary...)}
}

// Name identifies the source.
func (v *VocabularySource) Name() string { return "vocabulary" }

// Skills returns the vocabulary entries contained in text.
func (v *VocabularySource) Skills(_ context.Context, text string) Set {
	found := NewSet()
	lower := strings.ToLower(text)
	for _, term := range v.terms {
		if strings.Contains(lower, term) {
			found.Add(term)
		}
	}
	return found
}
