package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/agendadesk/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory mirror that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	mirror, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory mirror")
	t.Cleanup(func() { _ = mirror.Close() })
	return mirror
}

func NewTestUoW(mirror *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(mirror)
}
