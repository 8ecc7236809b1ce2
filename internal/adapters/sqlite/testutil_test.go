// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ticketdesk/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// The pool is pinned to one connection because every new connection to
// ":memory:" would open a separate, empty database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTicket inserts a ticket directly and returns its ID.
func seedTicket(t *testing.T, db *sql.DB, name, ticketType, date, status string) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO tickets (name, type, date, status) VALUES (?, ?, ?, ?)",
		name, ticketType, date, status,
	)
	if err != nil {
		t.Fatalf("failed to seed ticket: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded ticket id: %v", err)
	}
	return id
}

// countTickets returns the number of rows in the tickets table.
func countTickets(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM tickets").Scan(&n); err != nil {
		t.Fatalf("failed to count tickets: %v", err)
	}
	return n
}
