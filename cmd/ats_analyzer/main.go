// Package main provides the ats_analyzer command line: the HTTP API server plus
// offline analysis, ranking and history commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "ats_analyzer",
	Short:        "ATS resume analyzer",
	Long:         "ATS analyzer scores how well a resume matches a job description, reports missing skills and keeps a history of analyses.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
