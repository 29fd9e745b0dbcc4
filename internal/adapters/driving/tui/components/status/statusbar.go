// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateQuerying   State = "querying"
	StateRebuilding State = "rebuilding"
	StateError      State = "error"
)

// Bar displays index state and keybinding hints.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	state      State
	message    string
	count      int
	generation uint64
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, match count and index generation.
func (b *Bar) renderLeft() string {
	gen := b.styles.Muted.Render(fmt.Sprintf("gen %d", b.generation))

	switch b.state {
	case StateQuerying:
		return b.styles.Muted.Render("Searching...")
	case StateRebuilding:
		return b.styles.Muted.Render("Rebuilding index...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render("Error: " + b.message)
		}
		return b.styles.Error.Render("Error")
	case StateReady:
	}

	if b.message != "" {
		return b.styles.Normal.Render(b.message) + "  " + gen
	}
	if b.count > 0 {
		return b.styles.Normal.Render(fmt.Sprintf("%d matches", b.count)) + "  " + gen
	}
	return b.styles.Muted.Render("Ready") + "  " + gen
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.count > 0 {
		bindings = b.keymap.SuggestHelp()
	} else {
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a custom message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetCount sets the number of listed suggestions.
func (b *Bar) SetCount(count int) {
	b.count = count
}

// Count returns the number of listed suggestions.
func (b *Bar) Count() int {
	return b.count
}

// SetGeneration records the index generation that answered the last query.
func (b *Bar) SetGeneration(gen uint64) {
	b.generation = gen
}

// Generation returns the last seen index generation.
func (b *Bar) Generation() uint64 {
	return b.generation
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar to default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.count = 0
}
