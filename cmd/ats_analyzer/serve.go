package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/server"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	servePort        int
	serveDatabaseURL string
	serveMaxUploadMB int
	serveRateLimit   int
	serveUseBrowser  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing upload, analyze, history and sample-job endpoints.
Analyses are persisted when a database URL is configured.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveMaxUploadMB, "max-upload-mb", config.DefaultMaxUploadMB, "Maximum resume upload size in MB")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", config.DefaultRateLimitPerMinute, "Analyze requests per minute per client")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render JavaScript job boards in headless Chrome")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	flags := config.Config{Verbose: verbose, UseBrowser: serveUseBrowser}
	if cmd.Flags().Changed("port") {
		flags.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		flags.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("max-upload-mb") {
		flags.MaxUploadMB = serveMaxUploadMB
	}
	if cmd.Flags().Changed("rate-limit") {
		flags.RateLimitPerMinute = serveRateLimit
	}

	cfg, err := resolveConfig(configPath, flags)
	if err != nil {
		return err
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var store server.Store
	if cfg.DatabaseURL != "" {
		database, err := openStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		store = database
	} else {
		log.Printf("Warning: no DATABASE_URL configured; analyses will not be persisted")
	}

	srv, err := server.New(server.Config{
		Port:               cfg.Port,
		MaxUploadMB:        cfg.MaxUploadMB,
		SessionTTL:         cfg.SessionTTLDuration(),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		UseBrowser:         cfg.UseBrowser,
		Verbose:            cfg.Verbose,
	}, analyzer, store)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
