package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit key.Binding
	Help key.Binding

	// Focus
	CycleFocus    key.Binding
	CycleFocusRev key.Binding

	// Splitter
	Reset        key.Binding
	CopyGeometry key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next focus"),
		),
		CycleFocusRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous focus"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset splitter"),
		),
		CopyGeometry: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy geometry"),
		),
	}
}
