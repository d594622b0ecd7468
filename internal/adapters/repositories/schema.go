package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite schema for local runs.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCertificateCacheQuery := `
	CREATE TABLE IF NOT EXISTS certificate_cache (
		deed_number TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	);
	`

	statements := []string{
		createCertificateCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Initialize the Postgres schema for deployed runs.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS certificate_cache (
		deed_number TEXT PRIMARY KEY,
		payload BYTEA NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init postgres schema: create certificate_cache: %w", err)
	}

	return nil
}
