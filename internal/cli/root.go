package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/service"
	"github.com/alexanderramin/agendadesk/internal/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// SourceFactory builds the named source. file is the dataset path used by
// the file source.
type SourceFactory func(name, file string) (source.Source, error)

// App holds references to all services and settings used by CLI commands.
type App struct {
	Agenda service.AgendaService
	// Import is nil when no database is available.
	Import service.ImportService

	Sources       SourceFactory
	DefaultSource string
	DefaultFile   string
	ReorderDelay  time.Duration

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// RunProgram runs the TUI. Nil uses a full-screen tea.Program.
	RunProgram func(m tea.Model) error
	// QuietTerminal silences terminal logging while the TUI runs and
	// returns the func that restores it. Nil leaves logging alone.
	QuietTerminal func() (restore func())
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	source string
	file   string
}

// NewRootCmd creates the top-level "agendadesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "agendadesk",
		Short:         "Meeting agenda dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd, app, flags)
			}
			return runShow(cmd, app, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.source, "source", "", "Data source: fixture, file, servicenow or mirror")
	root.PersistentFlags().StringVar(&flags.file, "file", "", "Dataset file for the file source (JSON or YAML)")

	root.AddCommand(
		newShowCmd(app, flags),
		newJSONCmd(app, flags),
		newMoveCmd(app, flags),
		newPostponeCmd(app, flags),
		newImportCmd(app, flags),
		newDatasetsCmd(app),
		newTUICmd(app, flags),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) resolveSource(flags *globalFlags) (source.Source, error) {
	name := flags.source
	if name == "" {
		name = a.DefaultSource
	}
	file := flags.file
	if file == "" {
		file = a.DefaultFile
	}
	if flags.file != "" && flags.source == "" {
		name = source.NameFile
	}
	if a.Sources == nil {
		return nil, errors.New("no data sources configured")
	}
	return a.Sources(name, file)
}

// loadStore fetches once from the selected source into a fresh store. On a
// source failure the store is empty and usable, and err says why.
func loadStore(ctx context.Context, app *App, flags *globalFlags) (*agenda.Store, error) {
	store := agenda.NewStore()
	src, err := app.resolveSource(flags)
	if err != nil {
		return store, err
	}
	if _, err := app.Agenda.Load(ctx, src, store); err != nil {
		return store, err
	}
	return store, nil
}

// warnUnavailable prints a source failure and reports whether err was one.
// Other errors are left for the caller.
func warnUnavailable(w io.Writer, err error) bool {
	if err == nil || !errors.Is(err, source.ErrSourceUnavailable) {
		return false
	}
	fmt.Fprintf(w, "Warning: %v\n", err)
	return true
}
