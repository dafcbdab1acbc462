package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperWASD(t *testing.T) {
	km := NewKeyMapper(1)

	tests := []struct {
		key  rune
		want core.Action
	}{
		{'w', core.ActionUp},
		{'a', core.ActionLeft},
		{'s', core.ActionDown},
		{'d', core.ActionRight},
	}

	for _, tc := range tests {
		action, player, isQuit := km.MapKey(runeKey(tc.key))
		if action != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.want)
		}
		if player != core.Player1 {
			t.Errorf("MapKey(%q) player = %v, expected Player1", tc.key, player)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not quit", tc.key)
		}
	}
}

func TestKeyMapperArrowsSinglePlayer(t *testing.T) {
	km := NewKeyMapper(1)

	action, player, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyUp})
	if action != core.ActionUp || player != core.Player1 {
		t.Errorf("arrows should drive Player1 in single-player games, got %v for %v", action, player)
	}
}

func TestKeyMapperArrowsTwoPlayer(t *testing.T) {
	km := NewKeyMapper(2)

	tests := []struct {
		keyType tea.KeyType
		want    core.Action
	}{
		{tea.KeyUp, core.ActionUp},
		{tea.KeyDown, core.ActionDown},
		{tea.KeyLeft, core.ActionLeft},
		{tea.KeyRight, core.ActionRight},
	}

	for _, tc := range tests {
		action, player, _ := km.MapKey(tea.KeyMsg{Type: tc.keyType})
		if action != tc.want {
			t.Errorf("MapKey(%v) = %v, expected %v", tc.keyType, action, tc.want)
		}
		if player != core.Player2 {
			t.Errorf("MapKey(%v) player = %v, expected Player2", tc.keyType, player)
		}
	}

	// WASD stays with Player1 even in two-player games
	action, player, _ := km.MapKey(runeKey('w'))
	if action != core.ActionUp || player != core.Player1 {
		t.Errorf("WASD should stay with Player1, got %v for %v", action, player)
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper(1)

	if _, _, isQuit := km.MapKey(runeKey('q')); !isQuit {
		t.Error("'q' should be a quit request")
	}
	if _, _, isQuit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit {
		t.Error("ctrl+c should be a quit request")
	}
	if _, _, isQuit := km.MapKey(runeKey('x')); isQuit {
		t.Error("'x' should not be a quit request")
	}
}

func TestKeyMapperControlKeys(t *testing.T) {
	km := NewKeyMapper(1)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('b'), core.ActionBack},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('m'), core.ActionMute},
		{runeKey('+'), core.ActionVolumeUp},
		{runeKey('='), core.ActionVolumeUp},
		{runeKey('-'), core.ActionVolumeDown},
		{runeKey('_'), core.ActionVolumeDown},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		action, _, _ := km.MapKey(tc.msg)
		if action != tc.want {
			t.Errorf("MapKey(%s) = %v, expected %v", tc.msg.String(), action, tc.want)
		}
	}
}

func TestKeyMapperMultiFrame(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(runeKey('w'), &frame)
	km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)

	if !frame.Player1().Has(core.ActionUp) {
		t.Error("Player1 should have ActionUp")
	}
	if !frame.Player2().Has(core.ActionDown) {
		t.Error("Player2 should have ActionDown")
	}
	if frame.Player1().Has(core.ActionDown) {
		t.Error("Player1 should not have Player2's action")
	}
}

func TestKeyMapperMultiFrameSkipsAudioActions(t *testing.T) {
	km := NewKeyMapper(1)
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(runeKey('m'), &frame)
	km.MapKeyToMultiFrame(runeKey('+'), &frame)
	km.MapKeyToMultiFrame(runeKey('-'), &frame)

	for _, a := range []core.Action{core.ActionMute, core.ActionVolumeUp, core.ActionVolumeDown} {
		if frame.Player1().Has(a) {
			t.Errorf("%v reached the game frame", a)
		}
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper(1)

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('w'), MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('s'), MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('t'), MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%s) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
