package repository

import (
	"context"

	"github.com/alexanderramin/agendadesk/internal/domain"
)

// DatasetSummary is a listing row for an imported dataset.
type DatasetSummary struct {
	ID         string
	Source     string
	AgendaName string
	ImportedAt string
	ItemCount  int
}

// DatasetRepo stores mirrored copies of fetched datasets. It never stores
// reorders or postpone edits; a mirror is exactly what the source returned.
type DatasetRepo interface {
	Save(ctx context.Context, d *domain.ImportedDataset) error
	GetByID(ctx context.Context, id string) (*domain.ImportedDataset, error)
	Latest(ctx context.Context) (*domain.ImportedDataset, error)
	List(ctx context.Context) ([]DatasetSummary, error)
	Delete(ctx context.Context, id string) error
}
