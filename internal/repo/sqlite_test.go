package repo_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/domain"
	"tripplanner/internal/repo"
	"tripplanner/testutil"
)

func TestOpenSQLite_MigratesAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "trips.db")
	ctx := context.Background()

	db, err := repo.OpenSQLite(ctx, path)
	require.NoError(t, err)

	s := repo.NewSQLiteStore(db)
	require.NoError(t, s.Save(ctx, []domain.Trip{tripFixture("t1", "Persisted")}))
	require.NoError(t, db.Close())

	// Reopen the same file: migrations are a no-op and the slot survives.
	db, err = repo.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	got, err := repo.NewSQLiteStore(db).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Persisted", got[0].Title)
}

func TestSQLiteStore_SingleSlotRow(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	s := repo.NewSQLiteStore(db)
	ctx := context.Background()

	// Repeated saves must upsert, never accumulate rows.
	require.NoError(t, s.Save(ctx, []domain.Trip{tripFixture("t1", "One")}))
	require.NoError(t, s.Save(ctx, []domain.Trip{tripFixture("t1", "One"), tripFixture("t2", "Two")}))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_slots`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
