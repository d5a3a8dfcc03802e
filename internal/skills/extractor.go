package skills

import (
	"context"
	"strings"
)

// Source produces candidate skills from text independently of other sources.
type Source interface {
	Name() string
	Skills(ctx context.Context, text string) Set
}

// Extractor unions the skills of its sources. It is immutable after construction
// and safe for concurrent use.
type Extractor struct {
	sources []Source
}

// Option configures an Extractor.
type Option func(*extractorOptions)

type extractorOptions struct {
	recognizer EntityRecognizer
	extra      []Source
}

// WithRecognizer enables entity-based extraction.
func WithRecognizer(r EntityRecognizer) Option {
	return func(o *extractorOptions) { o.recognizer = r }
}

// WithSource appends a custom source after the built-in ones.
func WithSource(s Source) Option {
	return func(o *extractorOptions) { o.extra = append(o.extra, s) }
}

// NewExtractor builds the pattern, entity and vocabulary pipeline. Without
// WithRecognizer the entity source uses NoopRecognizer.
func NewExtractor(opts ...Option) *Extractor {
	var o extractorOptions
	for _, opt := range opts {
		opt(&o)
	}

	sources := []Source{
		NewPatternSource(),
		NewEntitySource(o.recognizer),
		NewVocabularySource(),
	}
	sources = append(sources, o.extra...)

	return &Extractor{sources: sources}
}

// Extract returns the union of all sources' skills. Blank text yields an empty Set.
func (e *Extractor) Extract(ctx context.Context, text string) Set {
	result := NewSet()
	if strings.TrimSpace(text) == "" {
		return result
	}
	for _, src := range e.sources {
		for skill := range src.Skills(ctx, text) {
			result.Add(skill)
		}
	}
	return result
}

// SourceNames lists the sources in evaluation order.
func (e *Extractor) SourceNames() []string {
	names := make([]string, len(e.sources))
	for i, src := range e.sources {
		names[i] = src.Name()
	}
	return names
}
