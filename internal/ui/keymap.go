package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all key bindings, vim-flavored like the rest of the UI.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Quit         key.Binding
	Add          key.Binding
	Delete       key.Binding
	PrevInterval key.Binding
	NextInterval key.Binding
	ToggleLine   key.Binding
	Refresh      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open chart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", " "),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add ticker"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		PrevInterval: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "prev interval"),
		),
		NextInterval: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next interval"),
		),
		ToggleLine: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "candles/line"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}
