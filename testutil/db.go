// Package testutil provides shared helpers for tests that need a real
// database. The SQLite slot lives in a temp directory per test, so tests need
// no environment setup and never interfere with each other.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"tripplanner/migrations"
)

// NewSQLiteDB opens a fresh SQLite database under t.TempDir() and applies all
// migrations. The connection is closed automatically when the test (and all
// its subtests) finish.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trips.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("testutil.NewSQLiteDB: ping: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.NewSQLiteDB: migrate: %v", err)
	}

	return db
}
