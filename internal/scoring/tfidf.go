package scoring

import (
	"errors"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary of a fitted vectorizer.
const DefaultMaxFeatures = 1000

// ErrEmptyVocabulary is returned when no document contributes a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer builds TF-IDF vectors for a small set of documents. Vocabulary and
// IDF weights come only from the documents passed to FitTransform.
type Vectorizer struct {
	MaxFeatures int
}

// NewVectorizer returns a Vectorizer with DefaultMaxFeatures.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{MaxFeatures: DefaultMaxFeatures}
}

// Tokenize lower-cases text and returns its tokens of two or more word characters
// with stop words removed.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if !IsStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// FitTransform fits the vocabulary on docs and returns one L2-normalised vector
// per document, indexed by the returned vocabulary.
func (v *Vectorizer) FitTransform(docs []string) ([][]float64, []string, error) {
	counts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range Tokenize(doc) {
			counts[i][tok]++
			corpusFreq[tok]++
		}
		for term := range counts[i] {
			docFreq[term]++
		}
	}
	if len(corpusFreq) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	vocab := v.selectFeatures(corpusFreq)

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, term := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i := range docs {
		vec := make([]float64, len(vocab))
		for j, term := range vocab {
			vec[j] = float64(counts[i][term]) * idf[j]
		}
		vectors[i] = l2Normalize(vec)
	}
	return vectors, vocab, nil
}

// selectFeatures keeps the MaxFeatures most frequent terms, breaking ties
// alphabetically, and returns them in alphabetical order.
func (v *Vectorizer) selectFeatures(corpusFreq map[string]int) []string {
	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		})
		terms = terms[:v.MaxFeatures]
		sort.Strings(terms)
	}
	return terms
}

func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// LexicalSimilarity fits a vectorizer on exactly a and b and returns the cosine of
// their TF-IDF vectors in [0, 1]. Scores are not comparable across pairs since
// IDF is fitted per pair. Degenerate input yields 0.
func LexicalSimilarity(a, b string) float64 {
	vectors, _, err := NewVectorizer().FitTransform([]string{a, b})
	if err != nil {
		if !errors.Is(err, ErrEmptyVocabulary) {
			log.Printf("Lexical similarity unavailable: %v", err)
		}
		return 0
	}
	// Vectors are unit length or zero, so the dot product is the cosine
	return clamp(dot(vectors[0], vectors[1]), 0, 1)
}
