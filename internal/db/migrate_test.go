package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Migrate is idempotent.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"datasets", "dataset_items"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_datasets_imported", "idx_dataset_items_item"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_PostponeCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO datasets (id, source, imported_at) VALUES ('d1', 'fixture', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO dataset_items (dataset_id, position, item_id, title, postpone) VALUES ('d1', 0, 'i1', 'x', 'Maybe')`)
	assert.Error(t, err)
}

func TestMigrate_ItemsCascadeOnDatasetDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO datasets (id, source, imported_at) VALUES ('d1', 'fixture', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO dataset_items (dataset_id, position, item_id, title) VALUES ('d1', 0, 'i1', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM datasets WHERE id = 'd1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM dataset_items`).Scan(&n))
	assert.Equal(t, 0, n)
}
