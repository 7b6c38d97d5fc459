package cli

import (
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// agendaHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func agendaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runForm is swapped out in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

// postponeForm asks for the postpone flag of item. The toggled value is
// preselected since that is usually why the command was run.
func postponeForm(item domain.AgendaItem, result *domain.Postpone) *huh.Form {
	*result = item.Postpone.Toggle()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Postpone]().
				Title(fmt.Sprintf("Postpone #%d %s?", item.Order, item.Title)).
				Description(fmt.Sprintf("Currently %s", item.Postpone)).
				Options(
					huh.NewOption("Yes", domain.PostponeYes),
					huh.NewOption("No", domain.PostponeNo),
				).
				Value(result),
		),
	).WithTheme(agendaHuhTheme()).WithShowHelp(false)
}

func promptPostpone(item domain.AgendaItem) (domain.Postpone, error) {
	var value domain.Postpone
	if err := runForm(postponeForm(item, &value)); err != nil {
		return "", fmt.Errorf("postpone prompt: %w", err)
	}
	return value, nil
}
