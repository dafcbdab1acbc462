// Package multiplayer provides types and abstractions for multiplayer match
// support. Currently used for local two-player games; the session plumbing is
// designed for future SSH session-to-session matches.
package multiplayer

import (
	"time"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
// Player1 is always the WASD player, Player2 the arrow-keys player.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game.
	MatchModeSolo MatchMode = iota

	// MatchModeLocalDuo is two players sharing one keyboard.
	MatchModeLocalDuo

	// MatchModeOnlineDuo is reserved for future player vs player over network.
	// Not implemented, but the type exists for API stability.
	MatchModeOnlineDuo
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocalDuo:
		return "Local Duo"
	case MatchModeOnlineDuo:
		return "Online Duo"
	default:
		return "Unknown"
	}
}

// ModeForPlayers returns the match mode for a game's local player count.
func ModeForPlayers(players int) MatchMode {
	if players >= 2 {
		return MatchModeLocalDuo
	}
	return MatchModeSolo
}

// MatchResultData captures the outcome of a finished two-player match.
type MatchResultData struct {
	GameID       string
	Mode         MatchMode
	Player1Score int
	Player2Score int
	Winner       PlayerID // 0 on a draw
	Duration     time.Duration
}

// MatchResultSaver persists finished match results.
// Implemented by the storage layer; the TUI depends only on this interface.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchHandle provides access to match metadata.
// Games receive this to know their context without managing match lifecycle.
type MatchHandle interface {
	// ID returns the unique identifier for this match.
	ID() MatchID

	// Mode returns how this match is configured.
	Mode() MatchMode
}

// Match is a concrete implementation of MatchHandle.
// The platform creates matches and passes handles down.
type Match struct {
	id   MatchID
	mode MatchMode

	// SessionIDs tracks which sessions are part of this match.
	// Solo and LocalDuo use one session; OnlineDuo would use two.
	SessionIDs []SessionID
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		id:         id,
		mode:       mode,
		SessionIDs: sessions,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Sessions returns the session IDs participating in this match.
func (m *Match) Sessions() []SessionID {
	return m.SessionIDs
}
