package root

import (
	"context"

	"github.com/spf13/cobra"

	"liferpg/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
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
			return tui.RunBoard(ctx, a.Game, a.Oracle, user, cmd.OutOrStdout())
		},
	}

	return cmd
}
