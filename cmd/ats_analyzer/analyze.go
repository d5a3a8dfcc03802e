package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/db"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/jonathan/ats-analyzer/internal/schemas"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeTitle      string
	analyzeCompany    string
	analyzeJSON       bool
	analyzeValidate   bool
	analyzeOut        string
	analyzeUseBrowser bool
	analyzeSave       bool
	analyzeDatabase   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against one job description",
	Long: `Extract skills from a resume and a job description, compute the ATS score and
print the matching skills, missing skills and recommendations.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the result against the analysis schema")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write JSON output to this file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render JavaScript job boards in headless Chrome")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to the database")
	analyzeCmd.Flags().StringVar(&analyzeDatabase, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	flags := config.Config{Verbose: verbose, UseBrowser: analyzeUseBrowser}
	if cmd.Flags().Changed("db-url") {
		flags.DatabaseURL = analyzeDatabase
	}
	cfg, err := resolveConfig(configPath, flags)
	if err != nil {
		return err
	}

	resume, err := ingestion.IngestFromFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobText, err := readJobText(ctx, analyzeJob, analyzeJobURL, ingestion.URLOptions{
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return err
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzer.Analyze(ctx, resume.Text, jobText)

	// Same title and company defaults as the API
	labels := types.AnalyzeRequest{JobTitle: analyzeTitle, Company: analyzeCompany}
	labels.Normalize()

	if analyzeValidate {
		if err := schemas.ValidateAnalysisResult(result); err != nil {
			return fmt.Errorf("analysis failed schema validation: %w", err)
		}
		if cfg.Verbose {
			log.Printf("[VERBOSE] Result matches the analysis schema")
		}
	}

	resp := types.AnalyzeResponse{
		Success:  true,
		Analysis: result,
		JobTitle: labels.JobTitle,
		Company:  labels.Company,
	}

	if analyzeSave {
		store, err := openStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		saved, err := store.SaveAnalysis(ctx, &db.AnalysisRecord{
			ResumeFilename: resume.Name,
			ResumeText:     resume.Text,
			ResumeSkills:   result.ResumeSkills,
			JobTitle:       labels.JobTitle,
			Company:        labels.Company,
			JobDescription: jobText,
			JobURL:         analyzeJobURL,
			JobSkills:      result.JobSkills(),
			Result:         result,
		})
		if err != nil {
			return err
		}
		resp.AnalysisID = &saved.ID
	}

	if analyzeJSON || analyzeOut != "" {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := writeOutput(analyzeOut, append(data, '\n')); err != nil {
			return err
		}
		if analyzeOut == "" {
			return nil
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote analysis to %s\n", analyzeOut)
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(labels.JobTitle, labels.Company, result)
	if resp.AnalysisID != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Saved as %s\n", resp.AnalysisID)
	}
	return nil
}
