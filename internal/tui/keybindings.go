package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor's global keybindings.
type KeyMap struct {
	Quit        key.Binding
	Save        key.Binding
	ToggleFocus key.Binding
}

// DefaultKeyMap returns the default global keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
	}
}
