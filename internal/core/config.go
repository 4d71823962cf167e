package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed for deterministic deals
	Variant  string // Game-specific variant, e.g. a layout name; empty means pick one
	Strict   bool   // Treat configuration mismatches as errors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	DealID  string // Identifier of the current deal
	Variant string // Variant actually being played
	Moves   int    // Matches applied
	Elapsed int    // Seconds on the game clock
	Won     bool   // Board cleared
	Stuck   bool   // No move available
	Paused  bool   // Clock and input suspended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
