package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", runeKey(" "), core.ActionLaunch, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionResume, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"1", runeKey("1"), core.ActionShot1, false},
		{"2", runeKey("2"), core.ActionShot2, false},
		{"3", runeKey("3"), core.ActionShot3, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("2"), &frame) {
		t.Error("2 should not quit")
	}
	if !frame.Has(core.ActionShot2) {
		t.Error("frame should contain Shot2")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		held     bool
		expected bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false, true},
		{"drag keeps held", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, true},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, false},
		{"right press ignored", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, false},
		{"motion without button", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg, tt.held); got != tt.expected {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{runeKey("h"), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
