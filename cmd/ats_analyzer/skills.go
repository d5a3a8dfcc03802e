package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	skillsInput string
	skillsText  string
	skillsJSON  bool
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills found in a document",
	RunE:  runSkills,
}

func init() {
	skillsCmd.Flags().StringVarP(&skillsInput, "in", "i", "", "Path to a resume or job description file")
	skillsCmd.Flags().StringVar(&skillsText, "text", "", "Inline text to scan instead of a file")
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Print the skills as a JSON array")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if skillsInput != "" && skillsText != "" {
		return fmt.Errorf("only one of --in or --text can be specified")
	}
	if skillsInput == "" && skillsText == "" {
		return fmt.Errorf("either --in or --text is required")
	}

	source := "text"
	text := skillsText
	if skillsInput != "" {
		doc, err := ingestion.IngestFromFile(skillsInput)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		source = filepath.Base(skillsInput)
		text = doc.Text
	}

	cfg, err := resolveConfig(configPath, config.Config{Verbose: verbose})
	if err != nil {
		return err
	}
	analyzer, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	found := analyzer.Extractor().Extract(ctx, ingestion.Normalize(text)).Sorted()

	if skillsJSON {
		data, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		return writeOutput("", append(data, '\n'))
	}

	observability.NewPrinter(os.Stdout).PrintSkills(source, found)
	return nil
}
