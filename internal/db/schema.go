package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for the ticket store.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// through GetSchemaSQL() instead of declaring their own CREATE TABLE
// statements, so repository code referencing a missing column fails at test
// time with "no such column".
//
// Every statement is idempotent; running the schema against an existing
// database leaves its rows untouched.
const SchemaSQL = `
-- Tickets (the only persisted entity)
CREATE TABLE IF NOT EXISTS tickets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	type TEXT,
	date TEXT,
	status TEXT
);

CREATE INDEX IF NOT EXISTS idx_tickets_name ON tickets (name);
`

// InitSchema creates the tickets table and its name index if absent.
func InitSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to create table 'tickets' or index: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
