package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/agendadesk/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(id string) bool) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	exists := func(id string) bool {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM datasets WHERE id = ?`, id).Scan(&n))
		return n > 0
	}
	return db.NewSQLiteUnitOfWork(database), exists
}

func insertDataset(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO datasets (id, source, imported_at) VALUES (?, 'fixture', '2026-10-01T09:00:00Z')`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, exists := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertDataset(ctx, tx, "ds-1")
	})
	require.NoError(t, err)
	assert.True(t, exists("ds-1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, exists := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDataset(ctx, tx, "ds-2"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, exists("ds-2"), "dataset should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, exists := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertDataset(ctx, tx, "ds-3")
			panic("boom")
		})
	})
	assert.False(t, exists("ds-3"), "dataset should not exist after panic rollback")
}
