package root

import (
	"context"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
)

func newHardcoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hardcore",
		Short: "Toggle hardcore mode (1.5x quest XP, extra quests)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.ToggleHardcore{})
			return err
		},
	}
}

func newSickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sick",
		Short: "Toggle a sick day (pauses quests, keeps the streak)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.ToggleSickness{})
			return err
		},
	}
}
