package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/llm"
)

// Entity labels that carry skill names.
const (
	LabelOrg      = "ORG"
	LabelProduct  = "PRODUCT"
	LabelLanguage = "LANGUAGE"
)

// Entity is a tagged span of text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer tags organizations, products and languages in text.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// NoopRecognizer is used when no recognizer is available; it finds nothing.
type NoopRecognizer struct{}

// Entities returns no entities.
func (NoopRecognizer) Entities(context.Context, string) ([]Entity, error) {
	return nil, nil
}

// LLMRecognizer tags entities with a JSON-mode LLM call.
type LLMRecognizer struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMRecognizer creates a recognizer backed by client at the lite tier.
func NewLLMRecognizer(client llm.Client) *LLMRecognizer {
	return &LLMRecognizer{client: client, tier: llm.TierLite}
}

// Entities asks the model for ORG, PRODUCT and LANGUAGE entities.
func (r *LLMRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	prompt := llm.BuildExtractionPrompt(llm.EntitySchema(), text)

	resp, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, fmt.Errorf("entity tagging failed: %w", err)
	}

	var out struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &out); err != nil {
		return nil, fmt.Errorf("failed to parse entities: %w", err)
	}
	return out.Entities, nil
}

// EntitySource adds lower-cased ORG, PRODUCT and LANGUAGE entities. It runs the
// recognizer on the original-case text, since taggers rely on capitalization.
type EntitySource struct {
	recognizer EntityRecognizer
}

// NewEntitySource wraps a recognizer; nil means NoopRecognizer.
func NewEntitySource(r EntityRecognizer) *EntitySource {
	if r == nil {
		r = NoopRecognizer{}
	}
	return &EntitySource{recognizer: r}
}

// Name identifies the source.
func (e *EntitySource) Name() string { return "entities" }

// Skills returns the recognized entities. Recognizer failures contribute nothing.
func (e *EntitySource) Skills(ctx context.Context, text string) Set {
	found := NewSet()

	entities, err := e.recognizer.Entities(ctx, text)
	if err != nil {
		log.Printf("Warning: entity recognizer unavailable, skipping: %v", err)
		return found
	}

	for _, ent := range entities {
		switch strings.ToUpper(ent.Label) {
		case LabelOrg, LabelProduct, LabelLanguage:
			found.Add(strings.ToLower(strings.TrimSpace(ent.Text)))
		}
	}
	return found
}
