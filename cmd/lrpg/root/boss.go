package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newBossCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boss [boss_id]",
		Short: "List bosses, or fight one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
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

			if len(args) == 0 {
				fmt.Fprintln(w, ui.Heading(ui.IconBoss, "Bosses"))
				for _, b := range st.Bosses {
					lock := ui.Good.Render("ready")
					if engine.CanFight(st.Player.Streak, b) != nil {
						lock = ui.Bad.Render(fmt.Sprintf("locked (%d-day streak)", b.MinStreak))
					}
					fmt.Fprintf(w, "- %-10s %-24s %-10s %s %s\n", ui.Key.Render(b.ID), b.Name, b.Tier, ui.Muted.Render(fmt.Sprintf("+%d XP +%d coins", b.XP, b.Coins)), lock)
				}
				return nil
			}

			b, err := engine.CheckBoss(st, args[0])
			if err != nil {
				return err
			}
			if b.Tier == engine.BossSeasonal {
				season := a.Game.Engine().Season().Season
				fmt.Fprintln(w, ui.Muted.Render(a.Oracle.BossFlavor(ctx, season)))
			}
			out, err := a.Dispatch(ctx, engine.FightBoss{ID: b.ID})
			if err != nil {
				return err
			}
			printOutcome(w, out)
			return nil
		},
	}
	return cmd
}
