package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the database file used when no path is configured.
// It is resolved relative to the working directory.
const DefaultPath = "records_gui.db"

// ErrConnection marks a failure to open or reach the database file.
var ErrConnection = errors.New("database connection failed")

// Open opens the SQLite database at path and verifies the connection.
// The returned handle is limited to a single connection: the store is the
// only user and every write is committed on its own.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}

	// Ensure parent directory exists
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: failed to create %s: %v", ErrConnection, dir, err)
		}
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	database.SetMaxOpenConns(1)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return database, nil
}
