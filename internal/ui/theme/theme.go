package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve  lipgloss.Color
	Red    lipgloss.Color
	Peach  lipgloss.Color
	Yellow lipgloss.Color
	Green  lipgloss.Color
	Teal   lipgloss.Color
	Blue   lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Divider         lipgloss.Color
	DividerDragging lipgloss.Color
}

// DividerColor returns the fill for the committed divider, or for the live
// drag indicator when dragging is true.
func (t Theme) DividerColor(dragging bool) lipgloss.Color {
	if dragging {
		if t.DividerDragging != "" {
			return t.DividerDragging
		}
		return t.Mauve
	}
	if t.Divider != "" {
		return t.Divider
	}
	return t.BorderUnfocused
}

// BorderColor returns the pane border color for the focus state.
func (t Theme) BorderColor(focused bool) lipgloss.Color {
	if focused {
		return t.BorderFocused
	}
	return t.BorderUnfocused
}
