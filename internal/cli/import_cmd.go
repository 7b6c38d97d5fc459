package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("no database configured")

func newImportCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Fetch the selected source and save a copy to the local mirror",
		Long: `Fetch the selected source once and store the dataset in the local
database so it can be shown later with --source mirror.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return errNoDatabase
			}
			src, err := app.resolveSource(flags)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Fetching from %s...", src.Name()))
			}
			res, err := app.Import.Import(cmd.Context(), src)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d items from %s as dataset %s\n",
				formatter.StyleGreen.Render("✔"), res.ItemCount, res.Source, formatter.TruncID(res.ID))
			return nil
		},
	}
}

func newDatasetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List datasets saved in the local mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return errNoDatabase
			}
			list, err := app.Import.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No datasets imported yet. Run `agendadesk import`."))
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{
					d.ID,
					d.Source,
					formatter.Bold(formatter.Truncate(d.AgendaName, 40)),
					fmt.Sprintf("%d", d.ItemCount),
					formatter.Dim(d.ImportedAt),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderColumns([]formatter.Column{
				{Title: "ID"}, {Title: "SOURCE"}, {Title: "AGENDA"},
				{Title: "ITEMS", Align: formatter.AlignRight}, {Title: "IMPORTED"},
			}, rows))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a dataset from the local mirror",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return errNoDatabase
			}
			if err := app.Import.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting dataset %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s\n", args[0])
			return nil
		},
	})
	return cmd
}
