package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned when a difficulty name is not recognised.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty selects the parameter table a game uses at reset.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists all difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the capitalised name for display.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Next cycles to the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(Difficulties))
}

// Prev cycles to the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulty((int(d) + n - 1) % n)
}

// ParseDifficulty parses a difficulty name (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names decode as normal.
func (d *Difficulty) UnmarshalText(text []byte) error {
	*d, _ = ParseDifficulty(string(text))
	return nil
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int        // Screen width in characters
	ScreenH    int        // Screen height in characters
	TickRate   int        // Frames per second requested from the host
	Seed       int64      // Seed for hosts that need randomness
	Difficulty Difficulty // Parameter table used at reset
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Difficulty: DifficultyNormal,
	}
}

// Transition is a request from a game to its host.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionMenu            // leave the game and show the main menu
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State      GameState
	Transition Transition
}
