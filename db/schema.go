// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and the initialization marker
package db

import (
	"context"
	"database/sql"
	"errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	linkedin TEXT,
	emails TEXT NOT NULL DEFAULT '[]',
	phones TEXT NOT NULL DEFAULT '[]',
	comments TEXT NOT NULL DEFAULT '',
	periodicity TEXT NOT NULL,
	next_communication_type TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_companies_position ON companies(position);

CREATE TABLE IF NOT EXISTS communication_methods (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE,
	description TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	mandatory INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_communication_methods_sequence ON communication_methods(sequence);

CREATE TABLE IF NOT EXISTS communications (
	id TEXT PRIMARY KEY,
	company_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	type TEXT NOT NULL,
	date TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_communications_company ON communications(company_id, position);

CREATE TABLE IF NOT EXISTS highlight_overrides (
	company_id TEXT PRIMARY KEY,
	FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const metaInitialized = "initialized"

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// isInitialized reports whether a state snapshot has ever been saved.
func isInitialized(ctx context.Context, q querier) (bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaInitialized).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "1", nil
}

func markInitialized(ctx context.Context, q querier) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, '1')
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, metaInitialized)
	return err
}
