package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the confirmation prompt bindings.
type keyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// keys is the global key map. Enter falls through to the default answer,
// which is no.
var keys = keyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "delete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc", "q", "ctrl+c", "enter"),
		key.WithHelp("n/esc", "cancel"),
	),
}
