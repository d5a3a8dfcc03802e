package scoring

import (
	"context"
	"log"
	"math"
	"strings"
)

// Embedder turns text into a dense vector. llm.GeminiClient satisfies it.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of a and b. Mismatched lengths, empty
// vectors and zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SemanticSimilarity embeds both texts and returns their cosine clamped to [0, 1].
// Any failure degrades to 0 and is logged.
func SemanticSimilarity(ctx context.Context, embedder Embedder, a, b string) float64 {
	if embedder == nil || strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	va, err := embedder.Embed(ctx, a)
	if err != nil {
		log.Printf("Semantic similarity unavailable: %v", err)
		return 0
	}
	vb, err := embedder.Embed(ctx, b)
	if err != nil {
		log.Printf("Semantic similarity unavailable: %v", err)
		return 0
	}
	if len(va) != len(vb) {
		log.Printf("Semantic similarity unavailable: embedding dimensions differ (%d vs %d)", len(va), len(vb))
		return 0
	}

	return clamp(Cosine(va, vb), 0, 1)
}
