package source

import (
	"testing"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecords_FullRecord(t *testing.T) {
	items := NormalizeRecords([]Record{{
		"sys_id":                   "abc123",
		"short_description":        "Budget review",
		"u_item_start":             "10:00:00",
		"u_item_end":               "10:30:00",
		"discussion_time_required": "30 minutes",
		"schedule_clearance":       "true",
		"postpone":                 "Yes",
		"type_of_note":             "Decision",
	}})
	require.Len(t, items, 1)
	assert.Equal(t, domain.AgendaItem{
		ID:        "abc123",
		Title:     "Budget review",
		StartTime: "10:00:00",
		EndTime:   "10:30:00",
		Duration:  "30 minutes",
		NoteType:  "Decision",
		Order:     1,
		Scheduled: true,
		Postpone:  domain.PostponeYes,
	}, items[0])
}

func TestNormalizeRecords_Defaults(t *testing.T) {
	items := NormalizeRecords([]Record{
		{"short_description": "First"},
		{"short_description": "Second", "schedule_clearance": "false", "postpone": ""},
	})
	require.Len(t, items, 2)
	for i, it := range items {
		assert.Equal(t, DefaultClock, it.StartTime)
		assert.Equal(t, DefaultClock, it.EndTime)
		assert.Equal(t, DefaultDuration, it.Duration)
		assert.Equal(t, domain.PostponeNo, it.Postpone)
		assert.False(t, it.Scheduled)
		assert.Equal(t, i+1, it.Order)
		assert.NotEmpty(t, it.ID)
	}
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestNormalizeRecords_CoercesTypedValues(t *testing.T) {
	items := NormalizeRecords([]Record{{
		"short_description":  map[string]any{"value": "Raw title", "display_value": "Shown title"},
		"schedule_clearance": true,
		"postpone":           map[string]any{"display_value": "yes"},
	}})
	require.Len(t, items, 1)
	assert.Equal(t, "Raw title", items[0].Title)
	assert.True(t, items[0].Scheduled)
	assert.Equal(t, domain.PostponeYes, items[0].Postpone)
}

func TestNormalizeRecords_OnlyLiteralTrueSchedules(t *testing.T) {
	items := NormalizeRecords([]Record{
		{"schedule_clearance": "TRUE"},
		{"schedule_clearance": "1"},
		{"schedule_clearance": nil},
	})
	for _, it := range items {
		assert.False(t, it.Scheduled)
	}
}

func TestNormalizeRecords_Empty(t *testing.T) {
	assert.Empty(t, NormalizeRecords(nil))
}
