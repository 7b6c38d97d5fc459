package source

import (
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Defaults applied when a remote record leaves a field empty.
const (
	DefaultClock    = "00:00:00"
	DefaultDuration = "Not specified"
)

// Record is one row of the agenda-item table as the table API returns it.
type Record map[string]any

// NormalizeRecords maps raw table rows onto agenda items in source order.
// It is the only place that knows the remote field names.
func NormalizeRecords(records []Record) []domain.AgendaItem {
	items := make([]domain.AgendaItem, 0, len(records))
	for i, r := range records {
		items = append(items, normalizeRecord(r, i))
	}
	return items
}

func normalizeRecord(r Record, index int) domain.AgendaItem {
	postpone := domain.PostponeNo
	if p, err := domain.ParsePostpone(r.str("postpone")); err == nil {
		postpone = p
	}
	id := r.str("sys_id")
	if id == "" {
		id = uuid.NewString()
	}
	return domain.AgendaItem{
		ID:        id,
		Title:     r.str("short_description"),
		StartTime: r.strOr("u_item_start", DefaultClock),
		EndTime:   r.strOr("u_item_end", DefaultClock),
		Duration:  r.strOr("discussion_time_required", DefaultDuration),
		NoteType:  r.str("type_of_note"),
		Order:     index + 1,
		Scheduled: r.str("schedule_clearance") == "true",
		Postpone:  postpone,
	}
}

// str reads a field as a string. Reference and choice fields can come back
// as {"value": ..., "display_value": ...}; the raw value wins.
func (r Record) str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if m, ok := v.(map[string]any); ok {
		if raw, ok := m["value"]; ok {
			return cast.ToString(raw)
		}
		return cast.ToString(m["display_value"])
	}
	return cast.ToString(v)
}

func (r Record) strOr(key, fallback string) string {
	if v := r.str(key); v != "" {
		return v
	}
	return fallback
}
