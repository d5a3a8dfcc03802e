package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var migrateDatabaseURL string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the analysis tables if they do not exist",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	flags := config.Config{Verbose: verbose}
	if cmd.Flags().Changed("db-url") {
		flags.DatabaseURL = migrateDatabaseURL
	}
	cfg, err := resolveConfig(configPath, flags)
	if err != nil {
		return err
	}

	store, err := openStore(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	store.Close()

	_, _ = fmt.Fprintln(os.Stdout, "Schema is up to date")
	return nil
}
