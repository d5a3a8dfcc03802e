package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/ats-analyzer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be downloaded
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled from the page
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// browserTimeout bounds headless rendering of a single posting.
const browserTimeout = 45 * time.Second

// URLOptions controls how a job posting URL is ingested.
type URLOptions struct {
	Fetcher    *fetch.Fetcher
	UseBrowser bool // re-render short pages in headless Chrome
	Verbose    bool
}

// IngestFromURL downloads a job posting and returns its cleaned text as a Document.
func IngestFromURL(ctx context.Context, rawURL string, opts URLOptions) (*Document, error) {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.New()
	}

	platform := fetch.DetectPlatform(rawURL)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s (platform %s)", rawURL, platform)
	}

	page, err := fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.MainText(page.HTML, platform)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted %d chars over HTTP", len(text))
	}

	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		rendered, err := fetch.Render(ctx, rawURL, browserTimeout)
		if err != nil {
			// Keep the HTTP text; a short posting still scores
			log.Printf("Browser rendering failed for %s: %v", rawURL, err)
		} else if browserText, err := fetch.MainText(rendered, platform); err == nil {
			text = browserText
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: page has no text", ErrContentExtractionFailed)
	}

	doc := NewDocument(rawURL, cleaned)
	doc.Platform = string(platform)
	return doc, nil
}
