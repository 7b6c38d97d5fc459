package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/agendadesk/internal/db"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/repository"
	"github.com/alexanderramin/agendadesk/internal/source"
	"github.com/google/uuid"
)

type importService struct {
	datasets repository.DatasetRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewImportService(datasets repository.DatasetRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		datasets: datasets,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *importService) Import(ctx context.Context, src source.Source) (res *ImportResult, err error) {
	uc := startUseCase(s.observer, "dataset.import")
	uc.set("source", src.Name())
	defer func() {
		if res != nil {
			uc.set("dataset_id", res.ID)
			uc.set("items", res.ItemCount)
		}
		uc.end(ctx, err)
	}()

	if src.Name() == source.NameMirror {
		return nil, fmt.Errorf("cannot import from the mirror into itself")
	}

	ds, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src.Name(), err)
	}
	if ds == nil || len(ds.Items) == 0 {
		return nil, fmt.Errorf("%w: %s returned no agenda items", source.ErrSourceUnavailable, src.Name())
	}

	rec := &domain.ImportedDataset{
		ID:         uuid.New().String(),
		Source:     src.Name(),
		ImportedAt: s.now().UTC(),
		Dataset:    *ds,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteDatasetRepo(tx).Save(ctx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("saving dataset: %w", err)
	}

	return &ImportResult{
		ID:         rec.ID,
		Source:     rec.Source,
		ItemCount:  len(ds.Items),
		ImportedAt: rec.ImportedAt,
	}, nil
}

func (s *importService) List(ctx context.Context) ([]repository.DatasetSummary, error) {
	return s.datasets.List(ctx)
}

func (s *importService) Delete(ctx context.Context, id string) error {
	return s.datasets.Delete(ctx, id)
}
