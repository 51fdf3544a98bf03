package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends fill in the screen size; the seed drives all spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in frontend units (characters or pixels)
	ScreenH  int   // Screen height in frontend units
	TickRate int   // Ticks per second at level 1
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 1
	GameOver bool // Whether the last run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Quit is set when the player asked to leave; the platform must exit.
	Quit bool
}

// RunSummary describes one finished run. It is handed to the run history.
type RunSummary struct {
	Score     int
	HighScore int // Stored high score after this run
	NewHigh   bool
	Level     int
	Length    int
	Duration  time.Duration
	EndedAt   time.Time
}
