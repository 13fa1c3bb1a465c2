// Package testutil provides database and fixture helpers shared by tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/folio/internal/db"
)

// NewTestDB opens a migrated in-memory profile store, closed at cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening in-memory profile store: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// NewTestStore returns a fresh store and a unit of work over it, the pair
// service.NewProfileService takes.
func NewTestStore(t *testing.T) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	conn := NewTestDB(t)
	return conn, db.NewSQLiteUnitOfWork(conn)
}
