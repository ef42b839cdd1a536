package db

import (
	"github.com/glebarez/sqlite"

	"github.com/macro-tracker/backend/config"
)

// NewSQLiteConnection opens the SQLite database file at path, creating it if
// needed. Use ":memory:" for a throwaway database.
func NewSQLiteConnection(path string) (*Database, error) {
	// SQLite allows a single writer
	return open(sqlite.Open(path), config.StorageDriverSQLite, pool{maxOpen: 1})
}
