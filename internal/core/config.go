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
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable occurrence during a simulation tick.
// The platform uses events to drive audio and HUD feedback; games emit them
// from Step without knowing who listens.
type Event int

const (
	EventFruitCollected Event = iota // A regular fruit was picked up
	EventSpecialFruit                // A special (bonus) fruit was picked up
	EventPlayerCaught                // A predator caught a player
	EventGameOver                    // The game just ended
	EventPaused                      // Pause was toggled on
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFruitCollected:
		return "FruitCollected"
	case EventSpecialFruit:
		return "SpecialFruit"
	case EventPlayerCaught:
		return "PlayerCaught"
	case EventGameOver:
		return "GameOver"
	case EventPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
