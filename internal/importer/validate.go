package importer

import (
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/domain"
)

// ValidateDataset checks a parsed dataset before it is handed to a store.
// Returns a slice of all validation errors found.
func ValidateDataset(ds *domain.Dataset) []error {
	var errs []error
	if ds == nil {
		return []error{fmt.Errorf("dataset is empty")}
	}
	errs = append(errs, validateAgenda(ds.Agenda)...)
	errs = append(errs, validateItems(ds.Items)...)
	return errs
}

func validateAgenda(a *domain.Agenda) []error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.Name == "" {
		errs = append(errs, fmt.Errorf("agenda.name is required"))
	}
	if a.StartTime == "" {
		errs = append(errs, fmt.Errorf("agenda.startTime is required"))
	}
	if a.EndTime == "" {
		errs = append(errs, fmt.Errorf("agenda.endTime is required"))
	}
	if a.Lunch && (a.LunchStartTime == "" || a.LunchEndTime == "") {
		errs = append(errs, fmt.Errorf("agenda.lunch is set but lunchStartTime/lunchEndTime are missing"))
	}
	return errs
}

func validateItems(items []domain.AgendaItem) []error {
	var errs []error
	ids := make(map[string]bool, len(items))
	for i, it := range items {
		prefix := fmt.Sprintf("items[%d]", i)
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s.agendaItem is required", prefix))
		}
		if it.ID != "" {
			if ids[it.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, it.ID))
			}
			ids[it.ID] = true
		}
		if !it.Postpone.Valid() {
			errs = append(errs, fmt.Errorf("%s.postpone: invalid value %q (expected Yes or No)", prefix, it.Postpone))
		}
	}
	return errs
}
