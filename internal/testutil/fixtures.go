package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/google/uuid"
)

// Item options
type ItemOption func(*domain.AgendaItem)

func WithScheduled(b bool) ItemOption {
	return func(it *domain.AgendaItem) {
		it.Scheduled = b
	}
}

func WithPostpone(p domain.Postpone) ItemOption {
	return func(it *domain.AgendaItem) {
		it.Postpone = p
	}
}

func WithTimes(start, end string) ItemOption {
	return func(it *domain.AgendaItem) {
		it.StartTime = start
		it.EndTime = end
	}
}

func WithItemID(id string) ItemOption {
	return func(it *domain.AgendaItem) {
		it.ID = id
	}
}

func NewTestItem(title string, opts ...ItemOption) domain.AgendaItem {
	it := domain.AgendaItem{
		ID:        uuid.New().String(),
		Title:     title,
		StartTime: "09:00",
		EndTime:   "09:30",
		Duration:  "30 min",
		NoteType:  "Discussion",
		Postpone:  domain.PostponeNo,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// NewTestItems builds n items titled "Item 1".."Item n" with IDs "i1".."in".
func NewTestItems(n int) []domain.AgendaItem {
	items := make([]domain.AgendaItem, n)
	for i := range items {
		items[i] = NewTestItem(fmt.Sprintf("Item %d", i+1), WithItemID(fmt.Sprintf("i%d", i+1)))
	}
	return items
}

// Agenda options
type AgendaOption func(*domain.Agenda)

func WithLunch(start, end string) AgendaOption {
	return func(a *domain.Agenda) {
		a.Lunch = true
		a.LunchStartTime = start
		a.LunchEndTime = end
	}
}

func WithWindow(start, end string) AgendaOption {
	return func(a *domain.Agenda) {
		a.StartTime = start
		a.EndTime = end
	}
}

func NewTestAgenda(name string, opts ...AgendaOption) *domain.Agenda {
	a := &domain.Agenda{
		Name:               name,
		StartTime:          "09:00",
		EndTime:            "17:00",
		MeetingEnvironment: "Test",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestImportedDataset(source string, ds domain.Dataset) *domain.ImportedDataset {
	return &domain.ImportedDataset{
		ID:         uuid.New().String(),
		Source:     source,
		ImportedAt: time.Now().UTC(),
		Dataset:    ds,
	}
}
