package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the ats_analyzer binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "ats_analyzer")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_analyzer ./cmd/ats_analyzer'", binaryPath)
	}
	return binaryPath
}

// clearConfigEnv unsets the variables config.FromEnv reads.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "GEMINI_API_KEY", "PORT", "ATS_MAX_UPLOAD_MB", "ATS_SESSION_TTL",
		"ATS_RATE_LIMIT_PER_MINUTE", "ATS_EMBEDDING_MODEL", "ATS_ENTITY_MODEL", "ATS_USE_ENTITIES",
	} {
		t.Setenv(key, "")
	}
}
