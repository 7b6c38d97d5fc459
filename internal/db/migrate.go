package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// whole list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
		id                  TEXT PRIMARY KEY,
		source              TEXT NOT NULL,
		imported_at         TEXT NOT NULL,
		has_agenda          INTEGER NOT NULL DEFAULT 0,
		agenda_name         TEXT NOT NULL DEFAULT '',
		start_time          TEXT NOT NULL DEFAULT '',
		end_time            TEXT NOT NULL DEFAULT '',
		lunch               INTEGER NOT NULL DEFAULT 0,
		lunch_start_time    TEXT NOT NULL DEFAULT '',
		lunch_end_time      TEXT NOT NULL DEFAULT '',
		meeting_environment TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS dataset_items (
		dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		item_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time   TEXT NOT NULL DEFAULT '',
		duration   TEXT NOT NULL DEFAULT '',
		note_type  TEXT NOT NULL DEFAULT '',
		scheduled  INTEGER NOT NULL DEFAULT 0,
		postpone   TEXT NOT NULL DEFAULT 'No' CHECK(postpone IN ('Yes','No')),
		PRIMARY KEY (dataset_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_datasets_imported ON datasets(imported_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_dataset_items_item ON dataset_items(dataset_id, item_id)`,
}
