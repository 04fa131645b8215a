package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// KeyMap defines the key bindings for the world view.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Interact   key.Binding
	More       key.Binding
	Close      key.Binding
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Interact, k.More, k.Close, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Interact, k.More, k.Close},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Interact: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "interact"),
		),
		More: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "more"),
		),
		Close: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a world action.
// Keys that only affect the view map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Interact):
		return core.ActionInteract
	case key.Matches(msg, k.More):
		return core.ActionUseTool
	case key.Matches(msg, k.Close):
		return core.ActionMenu
	}
	return core.ActionNone
}
