package cli

import (
	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// jsonView shows the current items as indented JSON in a scrollable pane.
type jsonView struct {
	state *SharedState
	vp    viewport.Model
	close key.Binding
}

func newJSONView(state *SharedState) *jsonView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	out, err := formatter.ExportJSON(state.Store.Snapshot())
	if err != nil {
		vp.SetContent(formatter.StyleRed.Render(err.Error()))
	} else {
		vp.SetContent(string(out))
	}
	return &jsonView{
		state: state,
		vp:    vp,
		close: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
	}
}

func (v *jsonView) ID() ViewID { return ViewJSON }

func (v *jsonView) Title() string { return "JSON" }

func (v *jsonView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		v.close,
	}
}

func (v *jsonView) Init() tea.Cmd { return nil }

func (v *jsonView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, v.close) {
			return v, popView()
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *jsonView) View() string {
	return v.vp.View()
}
