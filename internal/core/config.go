package core

// RuntimeConfig contains the platform settings passed to a session.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
	}
}

// GameState is the read-only view of a game exposed to the front-end.
type GameState struct {
	Score    int
	Lives    int
	Level    int
	Launched bool
	Paused   bool
	GameOver bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
