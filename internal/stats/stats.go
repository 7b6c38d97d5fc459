// Package stats computes the dashboard's summary values from a store
// snapshot. Every function is pure and recomputes from scratch.
package stats

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/domain"
)

// ErrDegenerateTimeline indicates a timeline whose bounds coincide or whose
// time strings cannot be parsed.
var ErrDegenerateTimeline = errors.New("degenerate timeline")

// The schedule card is on track once 4 out of 5 items are cleared.
const (
	scheduleNum = 4
	scheduleDen = 5
)

// Completion is a count-over-total card value.
type Completion struct {
	Count     int
	Total     int
	Threshold int
}

// OnTrack reports whether Count meets Threshold.
func (c Completion) OnTrack() bool {
	return c.Count >= c.Threshold
}

// Status maps OnTrack onto the card status.
func (c Completion) Status() domain.Status {
	if c.OnTrack() {
		return domain.StatusOnTrack
	}
	return domain.StatusBehind
}

// OrderCompletion counts items carrying an order label.
func OrderCompletion(items []domain.AgendaItem) Completion {
	n := 0
	for _, it := range items {
		if it.Order > 0 {
			n++
		}
	}
	return Completion{Count: n, Total: len(items), Threshold: len(items)}
}

// ScheduleCompletion counts items with scheduling clearance. On track needs
// at least ceil(total * 0.8).
func ScheduleCompletion(items []domain.AgendaItem) Completion {
	n := 0
	for _, it := range items {
		if it.Scheduled {
			n++
		}
	}
	return Completion{
		Count:     n,
		Total:     len(items),
		Threshold: ceilDiv(len(items)*scheduleNum, scheduleDen),
	}
}

// TimelinePercentage places t on the [start, end] window as a percentage.
// Values outside the window fall below 0 or above 100.
func TimelinePercentage(t, start, end string) (float64, error) {
	tm, err := domain.ParseClock(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateTimeline, err)
	}
	sm, err := domain.ParseClock(start)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateTimeline, err)
	}
	em, err := domain.ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateTimeline, err)
	}
	if em == sm {
		return 0, fmt.Errorf("%w: start and end are both %s", ErrDegenerateTimeline, start)
	}
	return float64(tm-sm) / float64(em-sm) * 100, nil
}

// TimelineStatus is on track unless an item ends after the agenda does.
// Items with unparsable end times are not counted against the agenda.
func TimelineStatus(snap agenda.Snapshot) domain.Status {
	if snap.Agenda == nil {
		return domain.StatusOnTrack
	}
	end, err := domain.ParseClock(snap.Agenda.EndTime)
	if err != nil {
		return domain.StatusOnTrack
	}
	for _, it := range snap.Items {
		m, err := domain.ParseClock(it.EndTime)
		if err != nil {
			continue
		}
		if m > end {
			return domain.StatusBehind
		}
	}
	return domain.StatusOnTrack
}

// WindowReach is how far into the agenda window the latest-ending item
// runs, as a TimelinePercentage. ok is false when there is no agenda, the
// window is degenerate, or no item has a usable end time.
func WindowReach(snap agenda.Snapshot) (pct float64, ok bool) {
	if snap.Agenda == nil {
		return 0, false
	}
	for _, it := range snap.Items {
		p, err := TimelinePercentage(it.EndTime, snap.Agenda.StartTime, snap.Agenda.EndTime)
		if err != nil {
			continue
		}
		if !ok || p > pct {
			pct, ok = p, true
		}
	}
	return pct, ok
}

// ceilDiv avoids float rounding in ceil(n * 0.8).
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
