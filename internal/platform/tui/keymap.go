package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/angry-pixel/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	AngleUp   key.Binding
	AngleDown key.Binding
	PowerUp   key.Binding
	PowerDown key.Binding
	Throw     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AngleUp, k.AngleDown, k.PowerUp, k.PowerDown, k.Throw, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AngleUp, k.AngleDown},
		{k.PowerUp, k.PowerDown},
		{k.Throw, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AngleUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "raise angle"),
		),
		AngleDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "lower angle"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "more power"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "less power"),
		),
		Throw: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "throw / continue"),
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

// Button translates a key message to a game button.
// ok is false for keys that do not map to a button.
func (k KeyMap) Button(msg tea.KeyMsg) (b core.Button, ok bool) {
	switch {
	case key.Matches(msg, k.AngleUp):
		return core.ButtonAngleUp, true
	case key.Matches(msg, k.AngleDown):
		return core.ButtonAngleDown, true
	case key.Matches(msg, k.PowerUp):
		return core.ButtonPowerUp, true
	case key.Matches(msg, k.PowerDown):
		return core.ButtonPowerDown, true
	case key.Matches(msg, k.Throw):
		return core.ButtonThrow, true
	}
	return 0, false
}
