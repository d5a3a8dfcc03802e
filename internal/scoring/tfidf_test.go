package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The Go system uses Python, SQL and a C++ backend")
	assert.Equal(t, []string{"uses", "python", "sql", "backend"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("the and of"))
}

func TestFitTransform_IDFWeights(t *testing.T) {
	vectors, vocab, err := NewVectorizer().FitTransform([]string{"apple banana", "apple cherry"})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, vocab)
	require.Len(t, vectors, 2)

	// apple appears in both documents (idf 1), banana and cherry in one (idf ln(1.5)+1)
	assert.InDelta(t, 0.5797, vectors[0][0], 1e-4)
	assert.InDelta(t, 0.8148, vectors[0][1], 1e-4)
	assert.Equal(t, 0.0, vectors[0][2])
	assert.InDelta(t, 0.3361, dot(vectors[0], vectors[1]), 1e-4)
}

func TestFitTransform_EmptyVocabulary(t *testing.T) {
	_, _, err := NewVectorizer().FitTransform([]string{"the and", "of it"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFitTransform_MaxFeatures(t *testing.T) {
	v := &Vectorizer{MaxFeatures: 2}
	_, vocab, err := v.FitTransform([]string{"zeta zeta alpha beta", "gamma beta"})
	require.NoError(t, err)
	// beta and zeta occur twice; alpha and gamma once
	assert.Equal(t, []string{"beta", "zeta"}, vocab)

	v = &Vectorizer{MaxFeatures: 1}
	_, vocab, err = v.FitTransform([]string{"delta charlie", "echo"})
	require.NoError(t, err)
	// all tied, alphabetical order wins
	assert.Equal(t, []string{"charlie"}, vocab)
}

func TestLexicalSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "python developer with aws", "python developer with aws", 0.9999, 1},
		{"disjoint", "python developer", "marketing manager", 0, 0},
		{"partial overlap", "python react developer", "python kubernetes engineer", 0.01, 0.99},
		{"stop words only", "the and of", "it is a", 0, 0},
		{"one side empty", "", "python", 0, 0},
		{"both empty", "", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LexicalSimilarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("go"))
	assert.True(t, IsStopWord("system"))
	assert.False(t, IsStopWord("python"))
	assert.False(t, IsStopWord("The"))
}
