package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive agenda dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, flags)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App, flags *globalFlags) error {
	src, err := app.resolveSource(flags)
	if err != nil {
		return err
	}
	m := newAppModel(app, src)
	defer m.state.Store.Close()

	if app.QuietTerminal != nil {
		restore := app.QuietTerminal()
		defer restore()
	}

	if app.RunProgram != nil {
		return app.RunProgram(m)
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}
