package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// gameBindings are the in-game keys, checked in order.
var gameBindings = []actionBinding{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), core.ActionQuit},
	{key.NewBinding(key.WithKeys("a", "left")), core.ActionLeft},
	{key.NewBinding(key.WithKeys("d", "right")), core.ActionRight},
	{key.NewBinding(key.WithKeys(" ")), core.ActionLaunch},
	{key.NewBinding(key.WithKeys("esc", "p")), core.ActionPause},
	{key.NewBinding(key.WithKeys("enter")), core.ActionResume},
	{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
	{key.NewBinding(key.WithKeys("b")), core.ActionBack},
	{key.NewBinding(key.WithKeys("1")), core.ActionShot1},
	{key.NewBinding(key.WithKeys("2")), core.ActionShot2},
	{key.NewBinding(key.WithKeys("3")), core.ActionShot3},
}

// MenuAction is a navigation intent on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuBindings = []struct {
	binding key.Binding
	action  MenuAction
}{
	{key.NewBinding(key.WithKeys("ctrl+c", "q")), MenuActionQuit},
	{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
	{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
	{key.NewBinding(key.WithKeys("a", "left", "h")), MenuActionLeft},
	{key.NewBinding(key.WithKeys("d", "right", "l")), MenuActionRight},
	{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
	{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
	{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
}

// KeyMapper turns Bubble Tea key and mouse messages into actions.
type KeyMapper struct{}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the game action bound to msg, or ActionNone. isQuit is
// set for the quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range gameBindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame sets the action bound to msg on frame and reports whether
// msg was a quit key.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MapMouse returns whether the left button is held after msg, given that
// held was the state before it. Any release lets go; other buttons and
// plain motion leave the state unchanged.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, held bool) bool {
	switch {
	case msg.Action == tea.MouseActionRelease:
		return false
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return true
	default:
		return held
	}
}

// IsHeldAction reports whether a stays active between key repeats.
func IsHeldAction(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range menuBindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
