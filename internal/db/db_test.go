package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countProfiles(t *testing.T, tx DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, tx.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM rate_profiles`).Scan(&n))
	return n
}

func insertProfile(ctx context.Context, tx DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO rate_profiles (id, name, base_complexity,
		content_pages_per_day, illustration_days_per_book, design_pages_per_day,
		review_pages_per_day, correction_pages_per_day, final_review_days_per_book,
		created_at, updated_at) VALUES (?, ?, 'simple', 22, 1, 12, 34, 30, 0.5, 'now', 'now')`, id, name)
	return err
}

func TestOpenDB_MemoryAppliesSchema(t *testing.T) {
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, 0, countProfiles(t, conn))
}

func TestOpenDB_FileCreatesDirectoryAndUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")

	conn, err := OpenDB(path)
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestMigrate_RejectsNegativeRates(t *testing.T) {
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO rate_profiles (id, name, base_complexity,
		content_pages_per_day, illustration_days_per_book, design_pages_per_day,
		review_pages_per_day, correction_pages_per_day, final_review_days_per_book,
		created_at, updated_at) VALUES ('x', 'bad', 'simple', -1, 1, 12, 34, 30, 0.5, 'now', 'now')`)
	assert.Error(t, err)
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer conn.Close()
	uow := NewSQLiteUnitOfWork(conn)
	ctx := context.Background()

	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		return insertProfile(ctx, tx, "a", "Alpha")
	}))
	assert.Equal(t, 1, countProfiles(t, conn))

	boom := errors.New("boom")
	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := insertProfile(ctx, tx, "b", "Beta"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, countProfiles(t, conn))
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer conn.Close()
	uow := NewSQLiteUnitOfWork(conn)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertProfile(ctx, tx, "a", "Alpha"))
			panic("boom")
		})
	})
	assert.Equal(t, 0, countProfiles(t, conn))
}
