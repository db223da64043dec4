package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flip-frenzy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launcher with the game and the scoreboard",
	Long: `Open the launcher. Pick a game to play, open the high scores, or quit.
From a finished or paused game, press B to come back here.

Accepts the same --config and --difficulty flags as play.`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(cmd); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	return tui.RunSession(runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
	})
}
