package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/service"
	"github.com/alexanderramin/agendadesk/internal/source"
	"github.com/alexanderramin/agendadesk/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// agendaLoadedMsg carries the result of a fetch into the store.
type agendaLoadedMsg struct {
	res *service.LoadResult
	err error
}

// reorderCommitMsg fires after the commit delay. A commit whose generation
// is no longer current is ignored by the store.
type reorderCommitMsg struct {
	gen uint64
	to  int
}

// dashboardView renders the agenda and forwards gestures into the store.
type dashboardView struct {
	state   *SharedState
	keys    dashboardKeys
	spinner spinner.Model

	cursor  int
	picked  int // index picked up with space, -1 when none
	loading bool
	loadErr error
	notice  string
}

func newDashboardView(state *SharedState) *dashboardView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &dashboardView{
		state:   state,
		keys:    newDashboardKeys(),
		spinner: sp,
		picked:  -1,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }

func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding { return v.keys.ShortHelp() }

func (v *dashboardView) Init() tea.Cmd {
	return v.loadAgenda()
}

func (v *dashboardView) loadAgenda() tea.Cmd {
	app, src, store := v.state.App, v.state.Source, v.state.Store
	return func() tea.Msg {
		res, err := app.Agenda.Load(context.Background(), src, store)
		return agendaLoadedMsg{res: res, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		v.loading = false
		v.loadErr = msg.err
		v.picked = -1
		v.notice = ""
		v.clampCursor()
		return v, nil

	case reorderCommitMsg:
		if v.state.Store.Commit(msg.gen) {
			v.cursor = msg.to
			v.notice = "Order updated"
		}
		return v, nil

	case spinner.TickMsg:
		if !v.state.Store.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := v.state.Store.Len()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < n-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Pick):
		if n == 0 {
			return nil
		}
		if v.picked < 0 {
			v.picked = v.cursor
			v.notice = "Move to the new position and press space to drop"
			return nil
		}
		from := v.picked
		v.picked = -1
		v.notice = ""
		if from == v.cursor {
			return nil
		}
		return v.stageMove(from, v.cursor)
	case key.Matches(msg, v.keys.Cancel):
		v.picked = -1
		v.notice = ""
	case key.Matches(msg, v.keys.MoveUp):
		if v.cursor > 0 {
			return v.stageMove(v.cursor, v.cursor-1)
		}
	case key.Matches(msg, v.keys.MoveDown):
		if v.cursor < n-1 {
			return v.stageMove(v.cursor, v.cursor+1)
		}
	case key.Matches(msg, v.keys.Yes):
		v.setPostpone(domain.PostponeYes)
	case key.Matches(msg, v.keys.No):
		v.setPostpone(domain.PostponeNo)
	case key.Matches(msg, v.keys.Toggle):
		snap := v.state.Store.Snapshot()
		if v.cursor < len(snap.Items) {
			v.setPostpone(snap.Items[v.cursor].Postpone.Toggle())
		}
	case key.Matches(msg, v.keys.JSON):
		return pushView(newJSONView(v.state))
	case key.Matches(msg, v.keys.Reload):
		v.loading = true
		v.picked = -1
		v.notice = ""
		return v.loadAgenda()
	}
	return nil
}

// stageMove stages a reorder and schedules its commit. Only one reorder
// may be pending at a time; gestures made meanwhile are refused.
func (v *dashboardView) stageMove(from, to int) tea.Cmd {
	store := v.state.Store
	if v.loading || store.Busy() {
		v.notice = "Updating order..."
		return nil
	}
	p, err := store.StageMove(from, to)
	if err != nil {
		v.notice = err.Error()
		return nil
	}
	v.notice = ""
	gen := p.Generation
	commit := tea.Tick(v.state.App.ReorderDelay, func(time.Time) tea.Msg {
		return reorderCommitMsg{gen: gen, to: to}
	})
	return tea.Batch(v.spinner.Tick, commit)
}

func (v *dashboardView) setPostpone(value domain.Postpone) {
	if err := v.state.Store.SetPostpone(v.cursor, value); err != nil {
		v.notice = err.Error()
		return
	}
	v.notice = ""
}

func (v *dashboardView) clampCursor() {
	n := v.state.Store.Len()
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *dashboardView) View() string {
	if v.loading && v.state.Store.Len() == 0 {
		return "\n  " + formatter.Dim(fmt.Sprintf("Loading agenda from %s...", v.state.Source.Name()))
	}

	snap := v.state.Store.Snapshot()
	summary := stats.Summarize(snap)

	var b strings.Builder
	b.WriteString(formatter.FormatAgendaHeader(snap.Agenda))
	b.WriteString("\n\n")
	if summary.Bar != nil {
		width := v.state.Width - 4
		if width > 80 {
			width = 80
		}
		b.WriteString(formatter.FormatTimeline(summary.Bar, width))
		b.WriteString("\n\n")
	}
	b.WriteString(formatter.FormatCards(summary))
	b.WriteString("\n")
	b.WriteString(v.statusLine(snap.Busy))
	b.WriteString("\n")
	b.WriteString(formatter.FormatItemTable(snap.Items, formatter.TableMarks{Cursor: v.cursor, Picked: v.picked}))
	return b.String()
}

func (v *dashboardView) statusLine(busy bool) string {
	switch {
	case busy:
		return v.spinner.View() + " " + formatter.Dim("Updating order...")
	case v.loading:
		return formatter.Dim("Reloading...")
	case v.loadErr != nil:
		msg := v.loadErr.Error()
		if errors.Is(v.loadErr, source.ErrSourceUnavailable) {
			msg = "No data: " + msg
		}
		return formatter.StyleRed.Render(msg) + "  " + formatter.Dim("press r to retry")
	case v.notice != "":
		return formatter.StyleYellow.Render(v.notice)
	}
	return ""
}
