package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Bold       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Key        lipgloss.Style
	Value      lipgloss.Style
	Hint       lipgloss.Style
	StatusText lipgloss.Style

	// Splitter
	Divider         lipgloss.Style
	DividerFocused  lipgloss.Style
	DividerDragging lipgloss.Style

	// Components
	StatusBar lipgloss.Style
	Mode      lipgloss.Style
	ModeDrag  lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Subtext),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Bold:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Red),
		Success:  lipgloss.NewStyle().Foreground(t.Green),
		Warning:  lipgloss.NewStyle().Foreground(t.Yellow),
		Key:      lipgloss.NewStyle().Foreground(t.Mauve),
		Value:    lipgloss.NewStyle().Foreground(t.Text),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Background(t.DividerColor(false)),
		DividerFocused: lipgloss.NewStyle().
			Background(t.BorderFocused),
		DividerDragging: lipgloss.NewStyle().
			Background(t.DividerColor(true)),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		Mode: lipgloss.NewStyle().
			Background(t.Blue).
			Foreground(t.Base).
			Bold(true).
			Padding(0, 1),
		ModeDrag: lipgloss.NewStyle().
			Background(t.Peach).
			Foreground(t.Base).
			Bold(true).
			Padding(0, 1),
	}
}
