package cli

import "github.com/charmbracelet/bubbles/key"

type dashboardKeys struct {
	Up       key.Binding
	Down     key.Binding
	Pick     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Yes      key.Binding
	No       key.Binding
	Toggle   key.Binding
	JSON     key.Binding
	Reload   key.Binding
	Cancel   key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pick:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick/drop")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "postpone")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		Toggle:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle postpone")),
		JSON:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "json")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel pick")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.MoveUp, k.MoveDown, k.Toggle, k.JSON, k.Reload}
}
