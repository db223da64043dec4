package core

// TickMS is the simulated duration of one tick in milliseconds.
// Game timers count down by this amount regardless of wall clock.
const TickMS = 1000.0 / 60

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the outward summary of a game, read by the platform after each tick.
type GameState struct {
	Phase    string // menu, playing, levelTransition, paused, gameOver
	Score    int    // Combined score of all players
	Level    int
	Players  int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
