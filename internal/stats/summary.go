package stats

import (
	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/domain"
)

// Summary bundles every derived value the views render.
type Summary struct {
	Order    Completion
	Schedule Completion
	Timeline domain.Status

	// Reach is WindowReach; HasReach is false when it could not be computed.
	Reach    float64
	HasReach bool

	// Bar is nil when the agenda is missing or its window is degenerate.
	Bar *Timeline
}

// Summarize derives all card values and the timeline bar from snap.
func Summarize(snap agenda.Snapshot) Summary {
	s := Summary{
		Order:    OrderCompletion(snap.Items),
		Schedule: ScheduleCompletion(snap.Items),
		Timeline: TimelineStatus(snap),
	}
	s.Reach, s.HasReach = WindowReach(snap)
	if tl, err := BuildTimeline(snap.Agenda); err == nil {
		s.Bar = &tl
	}
	return s
}
