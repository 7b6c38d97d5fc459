package cli

import (
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/spf13/cobra"
)

func newPostponeCmd(app *App, flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "postpone POSITION [yes|no]",
		Short: "Set the postpone flag of the item at POSITION",
		Long: `Set the postpone flag of an agenda item. Without a value the flag is
chosen from a prompt on interactive terminals and toggled otherwise.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			var value domain.Postpone
			if len(args) == 2 {
				if value, err = domain.ParsePostpone(args[1]); err != nil {
					return err
				}
			}

			store, err := loadStore(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			snap := store.Snapshot()
			if pos > len(snap.Items) {
				return fmt.Errorf("position %d out of range: agenda has %d items", pos, len(snap.Items))
			}
			item := snap.Items[pos-1]

			if value == "" {
				if app.interactive() {
					if value, err = promptPostpone(item); err != nil {
						return err
					}
				} else {
					value = item.Postpone.Toggle()
				}
			}

			if err := store.SetPostpone(pos-1, value); err != nil {
				return err
			}
			return printAgenda(cmd, store, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the items as JSON")
	return cmd
}
