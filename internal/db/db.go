// Package db provides PostgreSQL storage for resumes, job descriptions and analysis history.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// schemaStatements create the tables used for history. Each is idempotent.
//
//nolint:gochecknoglobals
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS resumes (
		id           UUID PRIMARY KEY,
		filename     TEXT NOT NULL,
		content      TEXT NOT NULL,
		content_hash TEXT NOT NULL,
		skills       JSONB NOT NULL DEFAULT '[]',
		uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id              UUID PRIMARY KEY,
		title           TEXT NOT NULL,
		company         TEXT NOT NULL,
		description     TEXT NOT NULL,
		source_url      TEXT,
		required_skills JSONB NOT NULL DEFAULT '[]',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS analysis_results (
		id              UUID PRIMARY KEY,
		resume_id       UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
		job_id          UUID NOT NULL REFERENCES job_descriptions (id) ON DELETE CASCADE,
		ats_score       DOUBLE PRECISION NOT NULL CHECK (ats_score >= 0 AND ats_score <= 100),
		missing_skills  JSONB NOT NULL DEFAULT '[]',
		matching_skills JSONB NOT NULL DEFAULT '[]',
		recommendations JSONB NOT NULL DEFAULT '[]',
		score_breakdown JSONB,
		analyzed_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_results_analyzed_at ON analysis_results (analyzed_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_resumes_content_hash ON resumes (content_hash)`,
}

// EnsureSchema creates any missing tables and indexes
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
