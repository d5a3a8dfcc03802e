package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSource(t *testing.T) {
	src := NewPatternSource()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"scenario resume", "Experienced Python and React developer with AWS and Docker skills", []string{"aws", "docker", "python", "react"}},
		{"symbol terms", "Built services in C++ and C# for 5 years", []string{"c#", "c++"}},
		{"symbol term at end", "Expert in C++", []string{"c++"}},
		{"dotted term", "node.js, vue.js and express", []string{"express", "node.js", "vue"}},
		{"longer alternative wins", "javascript engineer", []string{"javascript"}},
		{"no substring matches", "mysql and postgresql", []string{"mysql", "postgresql"}},
		{"go needs word boundary", "google golang gopher", []string{}},
		{"go on its own", "Go, Rust and Swift", []string{"go", "rust", "swift"}},
		{"adjacent terms", "python java ruby", []string{"java", "python", "ruby"}},
		{"multi word concepts", "machine learning, deep learning and computer vision", []string{"computer vision", "deep learning", "machine learning"}},
		{"hyphenated library", "scikit-learn, pandas, numpy", []string{"numpy", "pandas", "scikit-learn"}},
		{"case insensitive", "KUBERNETES Jenkins GCP", []string{"gcp", "jenkins", "kubernetes"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.Skills(context.Background(), tt.text)
			assert.Equal(t, tt.expected, got.Sorted())
		})
	}
}

func TestPatternSource_Name(t *testing.T) {
	assert.Equal(t, "patterns", NewPatternSource().Name())
}

func TestVocabularySource(t *testing.T) {
	src := NewVocabularySource()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"soft skills", "Agile/Scrum team, strong project management and data analysis", []string{"agile", "data analysis", "project management", "scrum"}},
		{"substring match", "JavaScript developer", []string{"java", "javascript"}},
		{"dotted", "Node.js backend", []string{"node.js"}},
		{"none", "Carpenter with 10 years experience", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, src.Skills(context.Background(), tt.text).Sorted())
		})
	}
}

func TestVocabularySource_CopiesTable(t *testing.T) {
	src := NewVocabularySource()
	src.terms[0] = "changed"

	assert.Equal(t, "python", vocabulary[0])
}
