// Package styles holds the lipgloss palette and styles of the autocomplete TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette maps each role to a colour pair; lipgloss picks the light or
// dark variant from the terminal background.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Match   lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Dim     lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Frame   lipgloss.AdaptiveColor
	Bar     lipgloss.AdaptiveColor
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"},
		Match:   lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"},
		Text:    lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"},
		Dim:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Error:   lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
		Frame:   lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		Bar:     lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#111827"},
	}
}

// Styles are the rendered styles every component draws with.
type Styles struct {
	palette Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Match      lipgloss.Style // typed prefix inside a suggestion
	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
}

// New derives Styles from p.
func New(p Palette) *Styles {
	return &Styles{
		palette:    p,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Subtitle:   lipgloss.NewStyle().Foreground(p.Dim).Italic(true),
		Normal:     lipgloss.NewStyle().Foreground(p.Text),
		Muted:      lipgloss.NewStyle().Foreground(p.Dim),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Match:      lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Match),
		Error:      lipgloss.NewStyle().Foreground(p.Error),
		InputField: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.Frame).Padding(0, 1),
		StatusBar:  lipgloss.NewStyle().Foreground(p.Dim).Background(p.Bar).Padding(0, 1),
	}
}

// DefaultStyles returns styles built from DefaultPalette.
func DefaultStyles() *Styles {
	return New(DefaultPalette())
}

// Palette returns the colours the styles were built from.
func (s *Styles) Palette() Palette {
	return s.palette
}
