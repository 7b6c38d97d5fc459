package service

import (
	"context"
	"time"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/repository"
	"github.com/alexanderramin/agendadesk/internal/source"
)

// LoadResult describes what a load put into the store.
type LoadResult struct {
	Source    string
	ItemCount int
	HasAgenda bool
}

// AgendaService fills an agenda store from a source.
type AgendaService interface {
	// Load fetches exactly once and replaces the store contents. On a
	// failed or empty fetch the store is left empty and the error wraps
	// source.ErrSourceUnavailable.
	Load(ctx context.Context, src source.Source, store *agenda.Store) (*LoadResult, error)
}

// ImportResult holds the outcome of mirroring a source into the database.
type ImportResult struct {
	ID         string
	Source     string
	ItemCount  int
	ImportedAt time.Time
}

// ImportService mirrors fetched datasets into the local database.
type ImportService interface {
	Import(ctx context.Context, src source.Source) (*ImportResult, error)
	List(ctx context.Context) ([]repository.DatasetSummary, error)
	Delete(ctx context.Context, id string) error
}
