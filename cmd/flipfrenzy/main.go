// flipfrenzy is a two-player platform brawler for the terminal: bump
// platforms from below to flip enemies, then kick them off the screen.
//
// Usage:
//
//	flipfrenzy play            - Play in the terminal
//	flipfrenzy menu            - Launcher with game and scoreboard
//	flipfrenzy serve           - Start SSH server for remote play
//	flipfrenzy scores          - Show high scores
//	flipfrenzy list            - List available games
//	flipfrenzy config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Append logs to a file
//
// Flag defaults can also come from FLIPFRENZY_* variables or a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flip-frenzy/internal/config"
	_ "github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy" // registers the game
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flipfrenzy",
	Short: "Flip Frenzy - flip enemies from below, kick them off the screen",
	Long: `Flip Frenzy is a one or two player platform game for the terminal.

Available commands:
  play     - Play a match
  menu     - Launcher with the game and the scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games
  config   - Print the effective game config

Examples:
  flipfrenzy play
  flipfrenzy play --difficulty hard --sound
  flipfrenzy serve --ssh :2222
  flipfrenzy scores --players 2`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, fills unset flags from the environment, and opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	envDefault(cmd, "db", &flagDBPath, config.EnvDB)
	envDefault(cmd, "log-file", &flagLogFile, config.EnvLog)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	case !drawsTerminal(cmd):
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flipfrenzy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// drawsTerminal reports whether cmd owns the screen, so logs to stderr
// would corrupt it.
func drawsTerminal(cmd *cobra.Command) bool {
	switch cmd {
	case playCmd, menuCmd:
		return true
	case scoresCmd:
		return flagInteractive
	}
	return false
}

// envDefault replaces a flag value with an environment variable unless
// the flag was given on the command line.
func envDefault(cmd *cobra.Command, name string, dst *string, key string) {
	if f := cmd.Flag(name); f != nil && f.Changed {
		return
	}
	*dst = config.EnvOr(key, *dst)
}
