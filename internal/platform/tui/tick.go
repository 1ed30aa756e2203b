// Package tui provides the Bubble Tea player that replays a drawing
// program command by command in the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next command of the replay.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate (commands per second).
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
