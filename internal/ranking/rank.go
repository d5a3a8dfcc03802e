// Package ranking scores one resume against many job descriptions and orders them by fit.
package ranking

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel analyses when the caller does not set one.
const DefaultConcurrency = 4

// Job is a named job description.
type Job struct {
	Name string
	Text string
}

// Ranked is a job together with its analysis against the resume.
type Ranked struct {
	Job    string                `json:"job"`
	Result *types.AnalysisResult `json:"analysis"`
	Notes  string                `json:"notes"`
}

// RankJobs analyzes resumeText against every job with at most concurrency analyses
// in flight, and returns the jobs sorted by descending score (ties by name).
func RankJobs(ctx context.Context, analyzer *analysis.Analyzer, resumeText string, jobs []Job, concurrency int) ([]Ranked, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	ranked := make([]Ranked, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("ranking %s: %w", job.Name, err)
			}
			result := analyzer.Analyze(gCtx, resumeText, job.Text)
			// Each goroutine owns its own index
			ranked[i] = Ranked{
				Job:    job.Name,
				Result: result,
				Notes:  generateNotes(result),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.ATSScore != ranked[j].Result.ATSScore {
			return ranked[i].Result.ATSScore > ranked[j].Result.ATSScore
		}
		return ranked[i].Job < ranked[j].Job
	})
	return ranked, nil
}

// LoadJobs reads job descriptions from files and directories. Directories are
// expanded one level deep to their supported files, in name order.
func LoadJobs(paths []string) ([]Job, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		for _, e := range entries {
			if !e.IsDir() && ingestion.IsAllowedFile(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no job description files found")
	}

	jobs := make([]Job, 0, len(files))
	for _, f := range files {
		text, err := ingestion.ExtractFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load job %s: %w", f, err)
		}
		jobs = append(jobs, Job{Name: filepath.Base(f), Text: text})
	}
	return jobs, nil
}
