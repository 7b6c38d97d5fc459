package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/db"
	"github.com/alexanderramin/agendadesk/internal/domain"
)

// SQLiteDatasetRepo implements DatasetRepo using a SQLite database.
type SQLiteDatasetRepo struct {
	db db.DBTX
}

// NewSQLiteDatasetRepo creates a new SQLiteDatasetRepo. Pass a *sql.Tx to
// scope it to a transaction.
func NewSQLiteDatasetRepo(conn db.DBTX) *SQLiteDatasetRepo {
	return &SQLiteDatasetRepo{db: conn}
}

// Save inserts the dataset header and all its items. Callers wanting
// atomicity run it inside a UnitOfWork.
func (r *SQLiteDatasetRepo) Save(ctx context.Context, d *domain.ImportedDataset) error {
	a := d.Dataset.Agenda
	hasAgenda := a != nil
	if a == nil {
		a = &domain.Agenda{}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO datasets
		(id, source, imported_at, has_agenda, agenda_name, start_time, end_time, lunch, lunch_start_time, lunch_end_time, meeting_environment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Source, formatTime(d.ImportedAt), boolToInt(hasAgenda),
		a.Name, a.StartTime, a.EndTime, boolToInt(a.Lunch),
		a.LunchStartTime, a.LunchEndTime, a.MeetingEnvironment,
	)
	if err != nil {
		return fmt.Errorf("inserting dataset: %w", err)
	}

	for i, it := range d.Dataset.Items {
		postpone := it.Postpone
		if !postpone.Valid() {
			postpone = domain.PostponeNo
		}
		_, err := r.db.ExecContext(ctx, `INSERT INTO dataset_items
			(dataset_id, position, item_id, title, start_time, end_time, duration, note_type, scheduled, postpone)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, i, it.ID, it.Title, it.StartTime, it.EndTime, it.Duration, it.NoteType,
			boolToInt(it.Scheduled), string(postpone),
		)
		if err != nil {
			return fmt.Errorf("inserting dataset item %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteDatasetRepo) GetByID(ctx context.Context, id string) (*domain.ImportedDataset, error) {
	row := r.db.QueryRowContext(ctx, datasetSelect+` WHERE id = ?`, id)
	return r.load(ctx, row)
}

// Latest returns the most recently imported dataset.
func (r *SQLiteDatasetRepo) Latest(ctx context.Context) (*domain.ImportedDataset, error) {
	row := r.db.QueryRowContext(ctx, datasetSelect+` ORDER BY imported_at DESC, rowid DESC LIMIT 1`)
	return r.load(ctx, row)
}

func (r *SQLiteDatasetRepo) List(ctx context.Context) ([]DatasetSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT d.id, d.source, d.agenda_name, d.imported_at,
			(SELECT COUNT(*) FROM dataset_items i WHERE i.dataset_id = d.id)
		FROM datasets d ORDER BY d.imported_at DESC, d.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	defer rows.Close()

	var out []DatasetSummary
	for rows.Next() {
		var s DatasetSummary
		if err := rows.Scan(&s.ID, &s.Source, &s.AgendaName, &s.ImportedAt, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}
	return out, nil
}

func (r *SQLiteDatasetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const datasetSelect = `SELECT id, source, imported_at, has_agenda, agenda_name, start_time, end_time,
	lunch, lunch_start_time, lunch_end_time, meeting_environment FROM datasets`

func (r *SQLiteDatasetRepo) load(ctx context.Context, row *sql.Row) (*domain.ImportedDataset, error) {
	var (
		d                   domain.ImportedDataset
		a                   domain.Agenda
		importedAt          string
		hasAgenda, lunchInt int
	)
	err := row.Scan(&d.ID, &d.Source, &importedAt, &hasAgenda,
		&a.Name, &a.StartTime, &a.EndTime, &lunchInt,
		&a.LunchStartTime, &a.LunchEndTime, &a.MeetingEnvironment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning dataset: %w", err)
	}
	if d.ImportedAt, err = parseTime(importedAt); err != nil {
		return nil, fmt.Errorf("parsing imported_at: %w", err)
	}
	if hasAgenda == 1 {
		a.Lunch = lunchInt == 1
		d.Dataset.Agenda = &a
	}

	items, err := r.listItems(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Dataset.Items = items
	return &d, nil
}

func (r *SQLiteDatasetRepo) listItems(ctx context.Context, datasetID string) ([]domain.AgendaItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT position, item_id, title, start_time, end_time, duration, note_type, scheduled, postpone
		FROM dataset_items WHERE dataset_id = ? ORDER BY position`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("listing dataset items: %w", err)
	}
	defer rows.Close()

	items := []domain.AgendaItem{}
	for rows.Next() {
		var (
			it        domain.AgendaItem
			position  int
			scheduled int
			postpone  string
		)
		if err := rows.Scan(&position, &it.ID, &it.Title, &it.StartTime, &it.EndTime,
			&it.Duration, &it.NoteType, &scheduled, &postpone); err != nil {
			return nil, fmt.Errorf("scanning dataset item: %w", err)
		}
		it.Order = position + 1
		it.Scheduled = scheduled == 1
		it.Postpone = domain.Postpone(postpone)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset items: %w", err)
	}
	return items, nil
}
