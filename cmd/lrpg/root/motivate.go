package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

func newMotivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motivate",
		Short: "Ask the oracle for encouragement",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			_, st, _, err := a.State(ctx)
			if err != nil {
				return err
			}
			text := a.Oracle.Motivation(ctx, st.Player.Level, st.Player.Stats)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconSparkle+" ")+text)
			return nil
		},
	}
}
