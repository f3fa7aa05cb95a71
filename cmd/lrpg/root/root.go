package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liferpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lrpg",
	Short:         "LifeRPG: turn daily habits into an RPG",
	Long:          "LifeRPG is a local-first CLI/TUI that scores quests, food, sleep, water and training as RPG progression.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newDoCmd(),
		newAddCmd(),
		newBossCmd(),
		newFoodCmd(),
		newSleepCmd(),
		newWaterCmd(),
		newShowerCmd(),
		newPRCmd(),
		newBankCmd(),
		newHardcoreCmd(),
		newSickCmd(),
		newChallengesCmd(),
		newMotivateCmd(),
		newUndoCmd(),
		newBoardCmd(),
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
