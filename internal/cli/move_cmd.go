package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/agendadesk/internal/agenda"
	"github.com/alexanderramin/agendadesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App, flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the item at position FROM to position TO",
		Long: `Move an agenda item. Positions are 1-based, as shown in the # column.
The new order is printed but not saved: the next load starts from the
source order again.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			store, err := loadStore(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			if err := commitMove(cmd, app, store, from-1, to-1); err != nil {
				return err
			}
			return printAgenda(cmd, store, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reordered items as JSON")
	return cmd
}

// commitMove stages the move and waits for the deferred commit, showing a
// spinner on interactive terminals meanwhile.
func commitMove(cmd *cobra.Command, app *App, store *agenda.Store, from, to int) error {
	done := make(chan bool, 1)
	r := agenda.NewReorderer(store, app.ReorderDelay, func(applied bool, _ agenda.Pending) {
		done <- applied
	})
	defer r.Close()

	if _, err := r.Move(from, to); err != nil {
		return fmt.Errorf("moving %d to %d: %w", from+1, to+1, err)
	}

	stop := func() {}
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Updating order...")
	}
	defer stop()

	select {
	case applied := <-done:
		if !applied {
			return errors.New("reorder was superseded before it committed")
		}
		return nil
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
}

func printAgenda(cmd *cobra.Command, store *agenda.Store, asJSON bool) error {
	snap := store.Snapshot()
	if asJSON {
		out, err := formatter.ExportJSON(snap)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(snap))
	return nil
}

func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: want a number from 1", arg)
	}
	return n, nil
}
