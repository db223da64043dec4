package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flip-frenzy/internal/config"
)

var flagEmbedded bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Long: `Print the config a match would use: the first file found among
--config, ~/.arcade/configs/flipfrenzy.yaml and ./configs/flipfrenzy.yaml,
falling back to the built-in defaults, with --difficulty applied.

Redirect the output to start a custom config:
  flipfrenzy config --embedded > ~/.arcade/configs/flipfrenzy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "Print the built-in defaults file verbatim")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagEmbedded {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
	if err := applyGameFlags(cmd); err != nil {
		return err
	}

	cfg, err := config.LoadFlip(flagConfig)
	if err != nil {
		return err
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok && flagDifficulty != "" {
		config.ApplyFlipPreset(&cfg, preset)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
