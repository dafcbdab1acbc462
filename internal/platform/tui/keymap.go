package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Player 1 moves on WASD. In two-player games the arrow keys belong to
// player 2; in single-player games they double as player 1 movement.
type KeyMapper struct {
	// TwoPlayer routes arrow keys to Player2 instead of Player1.
	TwoPlayer bool
}

// NewKeyMapper creates a key mapper for the given local player count.
func NewKeyMapper(players int) *KeyMapper {
	return &KeyMapper{TwoPlayer: players >= 2}
}

// MapKey translates a key message to an action and its owning player.
// Returns the action (may be ActionNone), the player, and whether the key is
// a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, player core.PlayerID, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, core.Player1, true
	}

	// WASD: always player 1
	switch key {
	case "w":
		return core.ActionUp, core.Player1, false
	case "s":
		return core.ActionDown, core.Player1, false
	case "a":
		return core.ActionLeft, core.Player1, false
	case "d":
		return core.ActionRight, core.Player1, false
	}

	// Arrows: player 2 in duo games, player 1 otherwise
	arrowPlayer := core.Player1
	if km.TwoPlayer {
		arrowPlayer = core.Player2
	}
	switch key {
	case "up":
		return core.ActionUp, arrowPlayer, false
	case "down":
		return core.ActionDown, arrowPlayer, false
	case "left":
		return core.ActionLeft, arrowPlayer, false
	case "right":
		return core.ActionRight, arrowPlayer, false
	}

	// Shared control keys
	switch key {
	case "enter":
		return core.ActionConfirm, core.Player1, false
	case "b", "esc":
		return core.ActionBack, core.Player1, false
	case "p":
		return core.ActionPause, core.Player1, false
	case "r":
		return core.ActionRestart, core.Player1, false
	case "m":
		return core.ActionMute, core.Player1, false
	case "+", "=":
		return core.ActionVolumeUp, core.Player1, false
	case "-", "_":
		return core.ActionVolumeDown, core.Player1, false
	}

	return core.ActionNone, core.Player1, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Audio controls are platform-level and never reach games.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	action, player, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionMute, core.ActionVolumeUp, core.ActionVolumeDown:
	default:
		frame.SetFor(player, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "t": // top scores for the highlighted game
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
