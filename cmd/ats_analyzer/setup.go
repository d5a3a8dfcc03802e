package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/db"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/skills"
)

// resolveConfig layers flag values over the config file, the environment and the
// built-in defaults, in that order of priority.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	cfg := flags

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		if flags.Verbose {
			log.Printf("[VERBOSE] Loaded config from: %s", path)
		}
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// llmConfig applies the configured model overrides to the default Gemini setup.
func llmConfig(cfg config.Config) *llm.Config {
	out := llm.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		out = out.WithEmbeddingModel(cfg.EmbeddingModel)
	}
	if cfg.EntityModel != "" {
		out = out.WithModel(llm.TierLite, cfg.EntityModel)
	}
	return out
}

// buildAnalyzer wires the skill extractor, scorer and analyzer. Without an API
// key the semantic sub-score is disabled and entity recognition is skipped.
// The returned cleanup releases the LLM client.
func buildAnalyzer(ctx context.Context, cfg config.Config) (*analysis.Analyzer, func(), error) {
	cleanup := func() {}

	var embedder scoring.Embedder
	var opts []skills.Option

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.APIKey)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create LLM client: %w", err)
		}
		embedder = client
		cleanup = func() { _ = client.Close() }
		if cfg.UseEntities {
			opts = append(opts, skills.WithRecognizer(skills.NewLLMRecognizer(client)))
		}
	} else {
		if cfg.UseEntities {
			log.Printf("Warning: use_entities needs GEMINI_API_KEY; entity recognition disabled")
		}
		if cfg.Verbose {
			log.Printf("[VERBOSE] No API key; semantic similarity disabled")
		}
	}

	extractor := skills.NewExtractor(opts...)
	scorer, err := scoring.New(embedder, extractor)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	if cfg.Verbose {
		log.Printf("[VERBOSE] Skill sources: %s", strings.Join(extractor.SourceNames(), ", "))
	}
	return analysis.NewAnalyzer(scorer, extractor), cleanup, nil
}

// openStore connects to PostgreSQL and makes sure the schema exists.
func openStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("a database URL is required (--db-url, config file or DATABASE_URL)")
	}
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// readJobText returns the job description from exactly one of a file or a URL.
func readJobText(ctx context.Context, jobPath, jobURL string, opts ingestion.URLOptions) (string, error) {
	switch {
	case jobPath != "" && jobURL != "":
		return "", fmt.Errorf("only one of --job or --job-url can be specified")
	case jobPath == "" && jobURL == "":
		return "", fmt.Errorf("either --job or --job-url is required")
	case jobURL != "":
		doc, err := ingestion.IngestFromURL(ctx, jobURL, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return doc.Text, nil
	default:
		doc, err := ingestion.IngestFromFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return doc.Text, nil
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
