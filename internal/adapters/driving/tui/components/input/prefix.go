// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
)

// PrefixInput wraps a bubbles textinput holding the title prefix.
type PrefixInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewPrefixInput creates a focused prefix input labelled with the owner name.
func NewPrefixInput(s *styles.Styles, label string) *PrefixInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if label == "" {
		label = "Title"
	}

	ti := textinput.New()
	ti.Placeholder = "Start typing a title..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &PrefixInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (p *PrefixInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages and reports whether the value changed.
func (p *PrefixInput) Update(msg tea.Msg) (*PrefixInput, tea.Cmd, bool) {
	before := p.textinput.Value()
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd, p.textinput.Value() != before
}

// View renders the input.
func (p *PrefixInput) View() string {
	label := p.styles.Title.Render(p.label + ": ")
	box := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box)
}

// Value returns the current prefix.
func (p *PrefixInput) Value() string {
	return p.textinput.Value()
}

// SetValue replaces the prefix and moves the cursor to the end.
func (p *PrefixInput) SetValue(value string) {
	p.textinput.SetValue(value)
	p.textinput.CursorEnd()
}

// SetLabel changes the label shown before the box.
func (p *PrefixInput) SetLabel(label string) {
	p.label = label
}

// Label returns the label shown before the box.
func (p *PrefixInput) Label() string {
	return p.label
}

// Focus sets focus on the input.
func (p *PrefixInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PrefixInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PrefixInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width of the input.
func (p *PrefixInput) SetWidth(width int) {
	p.width = width
	// Account for label and padding
	inputWidth := width - len(p.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PrefixInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PrefixInput) Reset() {
	p.textinput.Reset()
}
