// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table. Used by tests to start from a clean slate.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS voter;
		DROP TABLE IF EXISTS candidate;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}

	return nil
}

const Schema = `
-- Candidates (one row per president/vice-president ticket)
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    party_name TEXT NOT NULL,
    president_name TEXT NOT NULL,
    president_photo_url TEXT NOT NULL DEFAULT '',
    president_photo_hint TEXT NOT NULL DEFAULT '',
    vice_president_name TEXT NOT NULL,
    vice_president_photo_url TEXT NOT NULL DEFAULT '',
    vice_president_photo_hint TEXT NOT NULL DEFAULT '',
    vision TEXT NOT NULL DEFAULT '',
    mission TEXT NOT NULL DEFAULT '',
    votes BIGINT NOT NULL DEFAULT 0 CHECK (votes >= 0),
    version BIGINT NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    nis TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    class TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    voted_at TIMESTAMP,
    version BIGINT NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_has_voted ON voter(has_voted);
`
