package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showAchievements bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player stats, season and unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user, st, notices, err := a.State(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printNotices(w, notices)
			p := st.Player
			threshold := engine.XPThreshold(p.Level)

			fmt.Fprintln(w, ui.Heading(ui.IconSparkle, "Player Status: "+user))
			fmt.Fprintln(w, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(w, ui.LabelValue("XP", fmt.Sprintf("%d / %d (%d to go, %d total)", p.XP, threshold, threshold-p.XP, p.TotalXP)))
			fmt.Fprintln(w, ui.LabelValue("Coins", fmt.Sprintf("%s %d active, %s %d banked", ui.IconCoin, p.CoinsActive, ui.IconVault, p.CoinsBank)))
			fmt.Fprintln(w, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, p.Streak)))
			fmt.Fprintln(w, ui.LabelValue("Inventory slots", p.InventorySlots))
			if p.NextDayXPMultiplier > 1 {
				fmt.Fprintln(w, ui.LabelValue("XP multiplier", fmt.Sprintf("x%.2f", p.NextDayXPMultiplier)))
			}
			fmt.Fprintln(w, ui.LabelValue("Hardcore", onOff(p.HardcoreMode)))
			if p.SicknessActive {
				fmt.Fprintln(w, ui.Warn.Render(ui.IconSick+" Sick day: quests and hardcore are paused"))
			}
			fmt.Fprintln(w, "")

			season := a.Game.Engine().Season()
			fmt.Fprintln(w, ui.H2.Render(ui.IconCalendar+" Season"))
			fmt.Fprintf(w, "- Season %d, day %d, week %d\n", season.Season, season.Day, season.Week)
			if season.FinalWeek {
				fmt.Fprintln(w, "- "+ui.Gold.Render("Final week: the season boss awaits"))
			}
			fmt.Fprintln(w, "")

			fmt.Fprintln(w, ui.H2.Render("📊 Stats"))
			for _, k := range engine.StatKinds {
				fmt.Fprintf(w, "- %-20s %s %s\n", k.Label(), ui.TierText(p.Stats[k], engine.TierCount), ui.Muted.Render(fmt.Sprintf("(PR %g)", p.PR.Get(k))))
			}
			fmt.Fprintln(w, "")

			fmt.Fprintln(w, ui.H2.Render("🩺 Today"))
			fmt.Fprintf(w, "- %s %d glasses\n", ui.IconWater, p.WaterIntakeToday)
			fmt.Fprintf(w, "- %s %.1f h average over %d nights\n", ui.IconSleep, engine.AverageSleep(st.SleepHistory), len(st.SleepHistory))
			fmt.Fprintf(w, "- %s earned %d XP, %d coins\n", ui.IconBolt, p.EarnedXPToday, p.EarnedCoinsToday)
			fmt.Fprintln(w, "")

			if b, ok := engine.NextBoss(st); ok {
				fmt.Fprintf(w, "%s %s %s\n", ui.Key.Render("Next boss:"), b.Name, ui.Muted.Render(fmt.Sprintf("(unlocks at %d-day streak)", b.MinStreak)))
			}

			checker := engine.NewAchievementChecker(st)
			fmt.Fprintln(w, ui.LabelValue("Achievements", fmt.Sprintf("%s %d / %d", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			if showAchievements {
				for _, ach := range checker.GetAchievements() {
					mark := ui.Muted.Render("·")
					if ach.Earned {
						mark = ui.Good.Render("✓")
					}
					fmt.Fprintf(w, "  %s %s %s %s\n", mark, ach.Icon, ach.Name, ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showAchievements, "achievements", "a", false, "List every achievement")
	return cmd
}

func onOff(on bool) string {
	if on {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
