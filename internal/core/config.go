package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to lay out text around the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Fixed simulation step
	Seed    int64         // RNG seed for deterministic gameplay

	ExitOnCrash bool // End the run right after the crash frame is drawn
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    50 * time.Millisecond,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The player died; the simulation is frozen
	Exited   bool // The exit command was applied; the simulation is frozen
}

// Finished reports whether the simulation will not advance any more.
func (s GameState) Finished() bool {
	return s.GameOver || s.Exited
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface platforms drive. Implementations contain pure logic;
// the platform handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a short identifier, used for file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
