package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies a screen on the TUI stack.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewJSON
)

// View is one screen of the agenda TUI. The appModel renders the top view,
// shows its Title in the breadcrumb and its ShortHelp in the status bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// Stack transitions, handled by appModel.
type (
	pushViewMsg struct{ view View }
	popViewMsg  struct{}
)

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}
