package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PlayerKeyMap defines the key bindings for the player.
type PlayerKeyMap struct {
	Pause   key.Binding
	Step    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultPlayerKeyMap returns default key bindings.
func DefaultPlayerKeyMap() PlayerKeyMap {
	return PlayerKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "step"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
