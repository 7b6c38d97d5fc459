package stats

import "github.com/alexanderramin/agendadesk/internal/domain"

// Timeline is the view model for the chronology bar.
type Timeline struct {
	StartLabel string
	EndLabel   string

	HasLunch   bool
	LunchStart string
	LunchEnd   string
	// LunchLeft and LunchWidth are percentages of the bar.
	LunchLeft  float64
	LunchWidth float64
}

// BuildTimeline lays out the bar for a. A nil agenda or degenerate window
// returns ErrDegenerateTimeline so the caller can skip the bar.
func BuildTimeline(a *domain.Agenda) (Timeline, error) {
	if a == nil {
		return Timeline{}, ErrDegenerateTimeline
	}
	tl := Timeline{StartLabel: a.StartTime, EndLabel: a.EndTime}

	// Validate the window even without lunch.
	if _, err := TimelinePercentage(a.StartTime, a.StartTime, a.EndTime); err != nil {
		return Timeline{}, err
	}
	if !a.HasLunch() {
		return tl, nil
	}

	left, err := TimelinePercentage(a.LunchStartTime, a.StartTime, a.EndTime)
	if err != nil {
		return Timeline{}, err
	}
	right, err := TimelinePercentage(a.LunchEndTime, a.StartTime, a.EndTime)
	if err != nil {
		return Timeline{}, err
	}
	tl.HasLunch = true
	tl.LunchStart = a.LunchStartTime
	tl.LunchEnd = a.LunchEndTime
	tl.LunchLeft = clampPct(left)
	tl.LunchWidth = clampPct(right) - tl.LunchLeft
	if tl.LunchWidth < 0 {
		tl.LunchWidth = 0
	}
	return tl, nil
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
