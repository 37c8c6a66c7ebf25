package core

// RuntimeConfig is passed to games at initialization.
// Games use it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TicksFor converts a duration in milliseconds into simulation ticks,
// rounding up so that a nonzero duration is never zero ticks.
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if ms <= 0 {
		return 0
	}
	return (ms*rate + 999) / 1000
}

// GameState is returned by Game.State() to report status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Menu     bool // Whether the game asked to go back to the menu
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
