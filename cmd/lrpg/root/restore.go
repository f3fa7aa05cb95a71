package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undo",
		Aliases: []string{"restore"},
		Short:   "Undo the last saved change",
		Long: `Restore the game state saved before the last change.

Only one step is kept: running undo twice swaps back and forth.
Use this to fix an accidental quest completion or a mistyped log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := a.User(ctx)
			if err != nil {
				return err
			}
			ok, err := a.Game.Undo(ctx, user)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to undo."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconUndo+" Restored previous state"))
			return nil
		},
	}
	return cmd
}
