package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const (
	timelineBarWidth = 48
	cardWidth        = 28
	cardBarWidth     = 12
	titleColWidth    = 36
)

// EmptyAgendaMessage is shown when the store holds no items.
const EmptyAgendaMessage = "No agenda items loaded."

// FormatAgendaHeader renders the agenda name, window and environment.
func FormatAgendaHeader(a *domain.Agenda) string {
	if a == nil {
		return StyleBold.Render("Agenda") + "  " + Dim("(no agenda metadata)")
	}
	parts := []string{StyleBold.Render(a.Name)}
	if a.StartTime != "" || a.EndTime != "" {
		parts = append(parts, StyleFg.Render(fmt.Sprintf("%s - %s", ClockLabel(a.StartTime), ClockLabel(a.EndTime))))
	}
	if a.MeetingEnvironment != "" {
		parts = append(parts, StylePurple.Render(a.MeetingEnvironment))
	}
	return strings.Join(parts, Dim("  ·  "))
}

// FormatTimeline renders the chronology bar with the lunch overlay and the
// start and end labels beneath it. A nil timeline renders nothing.
func FormatTimeline(tl *stats.Timeline, width int) string {
	if tl == nil {
		return ""
	}
	if width < 10 {
		width = 10
	}

	lunchFrom, lunchTo := -1, -1
	if tl.HasLunch {
		lunchFrom = int(math.Round(tl.LunchLeft / 100 * float64(width)))
		lunchTo = int(math.Round((tl.LunchLeft + tl.LunchWidth) / 100 * float64(width)))
		if lunchTo == lunchFrom && tl.LunchWidth > 0 {
			lunchTo++
		}
	}

	var bar strings.Builder
	for i := 0; i < width; i++ {
		if i >= lunchFrom && i < lunchTo {
			bar.WriteString(StyleYellow.Render(filledBlock))
			continue
		}
		bar.WriteString(StyleBlue.Render("━"))
	}

	start, end := ClockLabel(tl.StartLabel), ClockLabel(tl.EndLabel)
	gap := width - lipgloss.Width(start) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	labels := Dim(start) + strings.Repeat(" ", gap) + Dim(end)

	out := bar.String() + "\n" + labels
	if tl.HasLunch {
		out += "\n" + StyleYellow.Render(fmt.Sprintf("Lunch %s - %s", ClockLabel(tl.LunchStart), ClockLabel(tl.LunchEnd)))
	}
	return out
}

// FormatCards renders the order, schedule and timeline cards side by side.
func FormatCards(s stats.Summary) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(cardWidth)

	order := strings.Join([]string{
		StyleHeader.Render("ORDER"),
		RenderCompletionBar(s.Order.Count, s.Order.Total, cardBarWidth, s.Order.OnTrack()),
		StatusIndicator(s.Order.Status()),
	}, "\n")

	schedule := strings.Join([]string{
		StyleHeader.Render("SCHEDULE"),
		RenderCompletionBar(s.Schedule.Count, s.Schedule.Total, cardBarWidth, s.Schedule.OnTrack()),
		StatusIndicator(s.Schedule.Status()) + Dim(fmt.Sprintf(" need %d", s.Schedule.Threshold)),
	}, "\n")

	reach := Dim("no item times")
	if s.HasReach {
		reach = RenderReach(s.Reach, cardBarWidth, s.Timeline == domain.StatusOnTrack)
	}
	timeline := strings.Join([]string{
		StyleHeader.Render("TIMELINE"),
		reach,
		StatusIndicator(s.Timeline),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(order),
		cardStyle.Render(schedule),
		cardStyle.Render(timeline),
	)
}

// TableMarks highlights rows in the item table. Use -1 for none.
type TableMarks struct {
	Cursor int
	Picked int
}

// NoMarks leaves every row unhighlighted.
var NoMarks = TableMarks{Cursor: -1, Picked: -1}

// FormatItemTable renders the agenda items in sequence order.
func FormatItemTable(items []domain.AgendaItem, marks TableMarks) string {
	if len(items) == 0 {
		return Dim(EmptyAgendaMessage)
	}
	cols := []Column{
		{Title: " "}, {Title: "#", Align: AlignRight}, {Title: "AGENDA ITEM"},
		{Title: "START"}, {Title: "END"}, {Title: "DURATION"}, {Title: "TYPE"},
		{Title: "SCHEDULED"}, {Title: "POSTPONE"},
	}
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		marker := " "
		title := StyleFg.Render(Truncate(it.Title, titleColWidth))
		switch {
		case i == marks.Picked:
			marker = StylePurple.Render("◆")
			title = StylePurple.Bold(true).Render(Truncate(it.Title, titleColWidth))
		case i == marks.Cursor:
			marker = StyleHeader.Render("▸")
			title = StyleBold.Render(Truncate(it.Title, titleColWidth))
		}
		rows = append(rows, []string{
			marker,
			StyleBlue.Render(fmt.Sprintf("%d", it.Order)),
			title,
			ClockLabel(it.StartTime),
			ClockLabel(it.EndTime),
			Dim(it.Duration),
			it.NoteType,
			ScheduledPill(it.Scheduled),
			PostponePill(it.Postpone),
		})
	}
	return RenderColumns(cols, rows)
}

// FormatDashboard renders the complete static dashboard for a snapshot.
func FormatDashboard(snap agenda.Snapshot) string {
	summary := stats.Summarize(snap)

	var b strings.Builder
	b.WriteString(FormatAgendaHeader(snap.Agenda))
	b.WriteString("\n\n")
	if summary.Bar != nil {
		b.WriteString(FormatTimeline(summary.Bar, timelineBarWidth))
		b.WriteString("\n\n")
	}
	b.WriteString(FormatCards(summary))
	b.WriteString("\n\n")
	b.WriteString(FormatItemTable(snap.Items, NoMarks))
	return RenderBox("Agenda", strings.TrimRight(b.String(), "\n"))
}

// ExportJSON returns the items of snap as two-space indented JSON.
func ExportJSON(snap agenda.Snapshot) ([]byte, error) {
	items := snap.Items
	if items == nil {
		items = []domain.AgendaItem{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding agenda items: %w", err)
	}
	return out, nil
}
