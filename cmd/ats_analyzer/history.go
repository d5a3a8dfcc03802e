package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/db"
	"github.com/jonathan/ats-analyzer/internal/export"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/jonathan/ats-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	historyLimit       int
	historyJSON        bool
	historyXLSX        string
	historyValidate    bool
	historyPruneBefore string
	historyDatabaseURL string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, export or prune stored analyses",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultHistoryLimit, "Number of analyses to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print the history as JSON")
	historyCmd.Flags().StringVar(&historyXLSX, "xlsx", "", "Write the history to this Excel workbook")
	historyCmd.Flags().BoolVar(&historyValidate, "validate", false, "Validate entries against the history schema")
	historyCmd.Flags().StringVar(&historyPruneBefore, "prune-before", "", "Delete analyses older than a date (2006-01-02) or age (720h, 30d)")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	flags := config.Config{Verbose: verbose}
	if cmd.Flags().Changed("db-url") {
		flags.DatabaseURL = historyDatabaseURL
	}
	cfg, err := resolveConfig(configPath, flags)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyPruneBefore != "" {
		cutoff, err := parseCutoff(historyPruneBefore, time.Now().UTC())
		if err != nil {
			return err
		}
		deleted, err := store.DeleteAnalysesBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Deleted %d analyses older than %s\n", deleted, cutoff.Format(time.DateTime))
		return nil
	}

	entries, err := store.ListHistory(ctx, historyLimit)
	if err != nil {
		return err
	}

	if historyValidate {
		if err := schemas.ValidateHistory(entries); err != nil {
			return fmt.Errorf("history failed schema validation: %w", err)
		}
	}

	if historyXLSX != "" {
		path, err := export.SaveFile(historyXLSX, func(w io.Writer) error {
			return export.WriteHistory(w, entries)
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Wrote %d analyses to %s\n", len(entries), path)
	}

	if historyJSON {
		data, err := json.MarshalIndent(map[string]any{"history": entries}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		return writeOutput("", append(data, '\n'))
	}

	observability.NewPrinter(os.Stdout).PrintHistory(entries)
	return nil
}

// parseCutoff accepts a date, an RFC 3339 timestamp, a Go duration or a number
// of days ("30d"). Durations are subtracted from now.
func parseCutoff(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err == nil && n > 0 {
			return now.AddDate(0, 0, -n), nil
		}
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return now.Add(-d), nil
	}
	return time.Time{}, fmt.Errorf("invalid --prune-before %q: use a date (2006-01-02), a timestamp or an age such as 720h or 30d", value)
}
