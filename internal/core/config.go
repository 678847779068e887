package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level (1-based)
	Solved   int  // Problems solved this run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a sound/FX notification raised by a game during a tick.
// The platform forwards cues to the audio collaborator; games never
// call into audio directly.
type Cue int

const (
	CueLand Cue = iota
	CueCorrect
	CueWrong
	CueMegaClear
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueLand:
		return "land"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueMegaClear:
		return "mega_clear"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
