// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the user picker.
	Back key.Binding

	// Up moves the suggestion cursor up.
	Up key.Binding

	// Down moves the suggestion cursor down.
	Down key.Binding

	// Complete replaces the prefix with the highlighted title.
	Complete key.Binding

	// Select chooses the highlighted entry.
	Select key.Binding

	// Rebuild asks for a fresh index generation.
	Rebuild key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Letters are left unbound while typing; navigation uses arrows and ctrl keys.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rebuild"),
		),
	}
}

// ShortHelp returns the bindings shown when nothing matches.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Rebuild, k.Quit}
}

// SuggestHelp returns the bindings shown while suggestions are listed.
func (k *KeyMap) SuggestHelp() []key.Binding {
	return []key.Binding{k.Down, k.Complete, k.Select, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
