package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quests",
		Aliases: []string{"list", "ls"},
		Short:   "List today's quests",
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
			fmt.Fprintln(w, ui.Heading(ui.IconQuest, "Quests for "+st.LastResetDate))
			if len(st.Quests) == 0 {
				fmt.Fprintln(w, ui.Muted.Render("(none)"))
				return nil
			}
			for _, q := range st.Quests {
				reward := ui.Muted.Render(fmt.Sprintf("+%d XP +%d coins", q.XP, q.Coins))
				if q.Kind == engine.QuestTracker {
					reward = ui.Muted.Render("(log sleep to complete)")
				}
				fmt.Fprintf(w, "%s %s %-12s %s %s\n", ui.KindIcon(q.Kind), ui.DoneText(q.Completed), ui.Key.Render(q.ID), q.Label, reward)
			}
			return nil
		},
	}
}

func newDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <quest_id>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.CompleteQuest{ID: args[0]})
			return err
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <label>",
		Short: "Add a personal quest for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("label is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			_, err := dispatch(context.Background(), cmd.OutOrStdout(), engine.AddPersonalQuest{Label: label})
			return err
		},
	}
}
