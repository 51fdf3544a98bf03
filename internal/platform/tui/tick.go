// Package tui runs the snake game in a terminal with Bubble Tea.
// It handles the terminal UI loop, key mapping and drawing the board
// into a colored cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// 1/tickRate seconds. The model reschedules it every tick so level changes
// take effect immediately.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
