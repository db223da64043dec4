package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	"github.com/vovakirdan/flip-frenzy/internal/platform/tui"
	"github.com/vovakirdan/flip-frenzy/internal/registry"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

var (
	flagInteractive bool
	flagPlayers     int
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best scores and match statistics.

Examples:
  flipfrenzy scores
  flipfrenzy scores --players 2 --limit 20
  flipfrenzy scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagPlayers, "players", 0, "Only matches with this many players (0 = all)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := flipfrenzy.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flipfrenzy list' to see available games", gameID)
	}
	if flagPlayers < 0 || flagPlayers > 2 {
		return fmt.Errorf("--players must be 0, 1 or 2, got %d", flagPlayers)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(gameID, flagPlayers, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flipfrenzy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Player", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6s  %-5d  %s\n",
			i+1, entry.Score, entry.Player, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("game stats", "err", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d   Matches: %d   Average: %.0f   Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	return nil
}
