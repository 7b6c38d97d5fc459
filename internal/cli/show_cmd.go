package cli

import (
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the agenda dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, flags)
		},
	}
}

func runShow(cmd *cobra.Command, app *App, flags *globalFlags) error {
	store, err := loadStore(cmd.Context(), app, flags)
	if err != nil && !warnUnavailable(cmd.ErrOrStderr(), err) {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(store.Snapshot()))
	return nil
}

func newJSONCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Print the agenda items as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), app, flags)
			if err != nil && !warnUnavailable(cmd.ErrOrStderr(), err) {
				return err
			}
			out, err := formatter.ExportJSON(store.Snapshot())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
