package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flip-frenzy/internal/audio"
	"github.com/vovakirdan/flip-frenzy/internal/config"
	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	termfe "github.com/vovakirdan/flip-frenzy/internal/platform/term"
	"github.com/vovakirdan/flip-frenzy/internal/platform/tui"
	"github.com/vovakirdan/flip-frenzy/internal/registry"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

// Frontends accepted by --frontend.
const (
	frontendTUI   = "tui"
	frontendTcell = "tcell"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFrontend   string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a match",
	Long: `Start Flip Frenzy in the terminal.

Controls:
  Player 1   Left/Right move, Up/Space jump
  Player 2   A/D move, W jump
  Up/Down    Choose 1 or 2 players in the menu
  Enter      Start / back to menu after game over
  P/Esc      Pause
  Ctrl+S     Save a screenshot (tui frontend)
  Q/Ctrl+C   Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flipfrenzy play
  flipfrenzy play --difficulty hard
  flipfrenzy play --frontend tcell --sound
  flipfrenzy play --config ./my-flipfrenzy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTUI, "Terminal frontend: tui or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

// applyGameFlags hands --config and --difficulty, or their environment
// defaults, to the game package.
func applyGameFlags(cmd *cobra.Command) error {
	envDefault(cmd, "config", &flagConfig, config.EnvConfig)
	envDefault(cmd, "difficulty", &flagDifficulty, config.EnvDifficulty)

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	flipfrenzy.SetConfigPath(flagConfig)
	flipfrenzy.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. The game runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("close scores database", "err", err)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := flipfrenzy.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flipfrenzy list' to see available games", gameID)
	}
	if flagFrontend != frontendTUI && flagFrontend != frontendTcell {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendTUI, frontendTcell)
	}
	if err := applyGameFlags(cmd); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	// An uninitialized player stays silent.
	sound := audio.NewPlayer(flagVolume)
	if flagSound {
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer sound.Close()

	cfg := runtimeConfig()
	logger.Info("play", "game", gameID, "frontend", flagFrontend, "seed", cfg.Seed, "sound", sound.Enabled())

	if flagFrontend == frontendTcell {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return termfe.Run(ctx, game, cfg, termfe.Options{
			Store:  store,
			Sound:  sound,
			Logger: logger,
		})
	}

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
}
