package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/source"
)

type agendaService struct {
	observer UseCaseObserver
}

func NewAgendaService(observers ...UseCaseObserver) AgendaService {
	return &agendaService{observer: useCaseObserverOrNoop(observers)}
}

func (s *agendaService) Load(ctx context.Context, src source.Source, store *agenda.Store) (res *LoadResult, err error) {
	uc := startUseCase(s.observer, "agenda.load")
	res = &LoadResult{Source: src.Name()}
	defer func() {
		uc.set("source", res.Source)
		uc.set("items", res.ItemCount)
		uc.end(ctx, err)
	}()

	ds, err := src.Fetch(ctx)
	if err == nil && (ds == nil || ds.Empty()) {
		err = fmt.Errorf("%w: %s returned no agenda items", source.ErrSourceUnavailable, src.Name())
	}
	if err != nil {
		store.Load(nil, nil)
		return res, fmt.Errorf("loading agenda: %w", err)
	}

	store.Load(ds.Agenda, ds.Items)
	res.ItemCount = store.Len()
	res.HasAgenda = ds.Agenda != nil
	return res, nil
}
