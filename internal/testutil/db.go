// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema mirrors the seats migration. Tests that only exercise read paths
// can seed this directly instead of going through Reserve.
const Schema = `
CREATE TABLE seats (
	number INTEGER PRIMARY KEY,
	user_id TEXT NOT NULL,
	reservation_id TEXT NOT NULL,
	reserved_at INTEGER NOT NULL
);

CREATE UNIQUE INDEX idx_seats_user_id ON seats (user_id);
CREATE UNIQUE INDEX idx_seats_reservation_id ON seats (reservation_id);
`

// NewTestDB creates an in-memory SQLite database with the seats schema.
// The database is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
