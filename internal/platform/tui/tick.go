// Package tui hosts the brick breaker modes in a terminal with Bubble Tea.
// It rasterizes draw lists into character cells, maps keys and the mouse to
// actions, and runs the menu, settings, scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame; the model measures dt
// between consecutive ticks.
type TickMsg time.Time

// tickCmd schedules the next frame at rate ticks per second.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(rate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
