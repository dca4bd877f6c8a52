package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"tripplanner/internal/domain"
	"tripplanner/migrations"
)

// OpenSQLite opens (creating if necessary) the SQLite database at path and
// applies any pending migrations from the embedded FS. The caller owns the
// returned *sql.DB and is responsible for closing it.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLite: create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: migrate: %w", err)
	}

	return db, nil
}

// SQLiteStore keeps the trip collection as a JSON document in a key-value
// table, under the fixed SlotKey. One row, whole collection — the same slot
// model as FileStore, with SQLite providing the durability.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore constructs a SQLiteStore over an already-opened, migrated db.
// In production pass the db from OpenSQLite; tests use testutil.NewSQLiteDB.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the stored trip collection.
// A missing slot row means nothing has been saved yet and yields an empty slice.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT value FROM kv_slots WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, q, SlotKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Trip{}, nil
		}
		return nil, fmt.Errorf("repo.SQLiteStore.Load: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal([]byte(value), &trips); err != nil {
		return nil, fmt.Errorf("repo.SQLiteStore.Load: decode: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Save replaces the stored collection with trips.
func (s *SQLiteStore) Save(ctx context.Context, trips []domain.Trip) error {
	if trips == nil {
		trips = []domain.Trip{}
	}
	value, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("repo.SQLiteStore.Save: encode: %w", err)
	}

	const q = `
		INSERT INTO kv_slots (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, q, SlotKey, string(value)); err != nil {
		return fmt.Errorf("repo.SQLiteStore.Save: %w", err)
	}
	return nil
}

// compile-time check: SQLiteStore must satisfy TripStore.
var _ TripStore = (*SQLiteStore)(nil)
