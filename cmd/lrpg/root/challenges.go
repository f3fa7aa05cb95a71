package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "challenges [challenge_id]",
		Aliases: []string{"challenge"},
		Short:   "List weekly challenges, or complete one",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				_, err := dispatch(ctx, cmd.OutOrStdout(), engine.CompleteChallenge{ID: args[0]})
				return err
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			_, st, notices, err := a.State(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printNotices(w, notices)
			fmt.Fprintln(w, ui.Heading(ui.IconTrophy, "Weekly Challenges"))
			for _, c := range a.Game.Engine().Challenges(st) {
				state := ui.DoneText(c.Completed)
				if c.Calc.Auto() {
					state = ui.DoneText(c.Done) + ui.Muted.Render(" (auto)")
				}
				fmt.Fprintf(w, "- %-4s %s %s %s\n", ui.Key.Render(c.ID), state, c.Label, ui.Muted.Render(fmt.Sprintf("+%d XP +%d coins", c.XP, c.Coins)))
			}
			return nil
		},
	}
	return cmd
}
