package cli

import (
	"strings"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/alexanderramin/agendadesk/internal/source"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel owns the agenda store for one TUI session and a stack of views
// over it, with the dashboard always at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App, src source.Source) appModel {
	state := &SharedState{App: app, Source: src, Store: agenda.NewStore()}
	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// updateView delivers msg to the view at index i and stores the result.
func (m *appModel) updateView(i int, msg tea.Msg) tea.Cmd {
	updated, cmd := m.viewStack[i].Update(msg)
	m.viewStack[i] = updated.(View)
	return cmd
}

func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.updateView(len(m.viewStack)-1, msg)
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		return m, m.updateActive(msg)

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.String() == "q":
			return m.quit()
		case msg.Type == tea.KeyEsc && len(m.viewStack) > 1:
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, m.updateActive(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case agendaLoadedMsg, reorderCommitMsg, spinner.TickMsg:
		// Store events reach the dashboard even under the JSON pane.
		cmds := make([]tea.Cmd, 0, len(m.viewStack))
		for i := range m.viewStack {
			cmds = append(cmds, m.updateView(i, msg))
		}
		return m, tea.Batch(cmds...)
	}
	return m, m.updateActive(msg)
}

// quit closes the store so a reorder still waiting on its timer is dropped.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.state.Store.Close()
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	parts := []string{m.renderHeader(), m.rule()}
	if v := m.activeView(); v != nil {
		parts = append(parts, v.View())
	}
	parts = append(parts, m.rule(), m.renderStatusBar())
	out := strings.Join(parts, "\n")

	// Alt-screen rendering diffs by line; fill the screen so rows from a
	// taller previous frame do not linger.
	if missing := m.state.Height - (strings.Count(out, "\n") + 1); missing > 0 {
		out += strings.Repeat("\n", missing)
	}
	return out
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// renderHeader shows the breadcrumb of open views and the active source.
func (m *appModel) renderHeader() string {
	crumbs := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := formatter.StylePurple.Render("agendadesk")
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("› "+strings.Join(crumbs, " › "))
	}
	if m.state.Source != nil {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(m.state.Source.Name()) + formatter.Dim("]")
	}
	return header
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, b.Help().Key+": "+b.Help().Desc)
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, "esc: back")
	}
	hints = append(hints, "q: quit")
	return formatter.Dim(strings.Join(hints, "  "))
}
