package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/export"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/jonathan/ats-analyzer/internal/ranking"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	rankResume      string
	rankJobs        []string
	rankConcurrency int
	rankJSON        bool
	rankXLSX        string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job descriptions by how well a resume matches them",
	Long: `Score one resume against every job description file given with --jobs
(files or directories) and print them best match first.`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankResume, "resume", "r", "", "Path to resume file")
	rankCmd.Flags().StringSliceVar(&rankJobs, "jobs", nil, "Job description files or directories (repeatable, comma-separated)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", ranking.DefaultConcurrency, "Maximum analyses in flight")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the ranking as JSON")
	rankCmd.Flags().StringVar(&rankXLSX, "xlsx", "", "Also write the ranking to this Excel workbook")

	if err := rankCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(configPath, config.Config{Verbose: verbose})
	if err != nil {
		return err
	}

	resume, err := ingestion.IngestFromFile(rankResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobs, err := ranking.LoadJobs(rankJobs)
	if err != nil {
		return err
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ranked, err := ranking.RankJobs(ctx, analyzer, resume.Text, jobs, rankConcurrency)
	if err != nil {
		return err
	}

	resumeName := filepath.Base(rankResume)
	if rankXLSX != "" {
		path, err := export.SaveFile(rankXLSX, func(w io.Writer) error {
			return export.WriteRanking(w, resumeName, ranked)
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Wrote ranking to %s\n", path)
	}

	if rankJSON {
		data, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking: %w", err)
		}
		return writeOutput("", append(data, '\n'))
	}

	observability.NewPrinter(os.Stdout).PrintRanking(resumeName, ranked)
	return nil
}
