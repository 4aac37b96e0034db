package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spaceshots/internal/game"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Coast   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Coast, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Coast, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or wasd thrust.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust +y"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "thrust -y"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "thrust -x"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "thrust +x"),
		),
		Coast: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "cut engine"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command maps a key to a thrust command. ok is false for keys that are
// not thrust controls.
func (k KeyMap) Command(msg tea.KeyMsg) (cmd game.Command, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.CommandUp, true
	case key.Matches(msg, k.Down):
		return game.CommandDown, true
	case key.Matches(msg, k.Left):
		return game.CommandLeft, true
	case key.Matches(msg, k.Right):
		return game.CommandRight, true
	case key.Matches(msg, k.Coast):
		return game.CommandNone, true
	}
	return game.CommandNone, false
}
