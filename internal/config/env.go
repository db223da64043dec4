package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that supply defaults for CLI flags.
const (
	EnvDB         = "FLIPFRENZY_DB"
	EnvConfig     = "FLIPFRENZY_CONFIG"
	EnvDifficulty = "FLIPFRENZY_DIFFICULTY"
	EnvLog        = "FLIPFRENZY_LOG"
)

// LoadEnv reads the given .env files (default ".env") into the process
// environment. Missing files are fine; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// EnvOr returns the value of key, or fallback when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
