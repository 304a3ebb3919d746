// Package testutil provides test utilities for docs database setup.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema is the subset of the jassdoc database schema that jassbot reads.
const Schema = `
CREATE TABLE parameters (
	fnname TEXT NOT NULL,
	param TEXT NOT NULL,
	value TEXT
);

CREATE TABLE params_extra (
	fnname TEXT NOT NULL,
	param TEXT NOT NULL,
	anname TEXT NOT NULL,
	value TEXT
);

CREATE TABLE annotations (
	fnname TEXT NOT NULL,
	anname TEXT NOT NULL,
	value TEXT
);

CREATE TABLE metadata (
	key TEXT PRIMARY KEY,
	value TEXT
);
`

// NewTestDB creates an in-memory SQLite database with the docs schema.
// The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a fresh database.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}

// NewTestDBFile creates the docs schema in a file under t.TempDir, for code
// that opens the database by path. It returns the path and a writable handle.
func NewTestDBFile(t *testing.T) (string, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jass.db")
	db, err := sql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return path, db
}
