package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Selection
	PrevDie  key.Binding
	NextDie  key.Binding
	PickDie  key.Binding
	MoreDice key.Binding
	LessDice key.Binding

	// Actions
	Roll          key.Binding
	ToggleHistory key.Binding
	ResetHistory  key.Binding

	// Control
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	PrevDie: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous die"),
	),
	NextDie: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next die"),
	),
	PickDie: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "pick die"),
	),
	MoreDice: key.NewBinding(
		key.WithKeys("up", "+", "="),
		key.WithHelp("↑/+", "more dice"),
	),
	LessDice: key.NewBinding(
		key.WithKeys("down", "-"),
		key.WithHelp("↓/-", "fewer dice"),
	),
	Roll: key.NewBinding(
		key.WithKeys(" ", "enter", "r"),
		key.WithHelp("space", "roll"),
	),
	ToggleHistory: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "show/hide history"),
	),
	ResetHistory: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "restart"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.NextDie, k.MoreDice, k.ToggleHistory, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDie, k.NextDie, k.PickDie},
		{k.MoreDice, k.LessDice, k.Roll},
		{k.ToggleHistory, k.ResetHistory, k.Help, k.Quit},
	}
}
