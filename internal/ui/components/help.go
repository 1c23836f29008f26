package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gosplit/internal/ui/msgs"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"q / Ctrl+C", "Quit"},
			{"?", "Toggle this help"},
			{"Tab", "Cycle focus: pane A, splitter, pane B"},
			{"r", "Reset splitter to the configured position"},
			{"y", "Copy layout geometry to the clipboard"},
		},
	},
	{
		Title: "Splitter",
		Bindings: []helpBinding{
			{"Mouse drag", "Move the divider, release to commit"},
			{"Esc", "Cancel a drag in progress"},
			{"← / →  ↑ / ↓", "Nudge the focused splitter"},
			{"Shift+arrow", "Nudge five times as far"},
		},
	},
	{
		Title: "Panes",
		Bindings: []helpBinding{
			{"j / k", "Scroll down / up"},
			{"g / G", "Top / bottom"},
		},
	},
}

// Help is a help overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	theme    theme.Theme
	styles   theme.Styles
	width    int
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(t theme.Theme, s theme.Styles) Help {
	return Help{
		theme:  t,
		styles: s,
	}
}

// SetSize sets the terminal dimensions for centering.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.buildViewport()
	}
}

func (m *Help) buildViewport() {
	boxWidth := 70
	contentWidth := boxWidth - 6 // padding + border

	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Bold(true).
		Width(16).
		Align(lipgloss.Right)

	descStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text)

	sectionStyle := lipgloss.NewStyle().
		Foreground(m.theme.Blue).
		Bold(true).
		MarginTop(1)

	sepStyle := lipgloss.NewStyle().
		Foreground(m.theme.Muted)

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))

		for _, b := range section.Bindings {
			line := keyStyle.Render(b.Key) + sepStyle.Render(" │ ") + descStyle.Render(b.Desc)
			lines = append(lines, line)
		}
	}

	content := strings.Join(lines, "\n")

	// Set viewport height with padding for border/title
	vpHeight := min(lipgloss.Height(content), max(3, m.height-8))

	m.viewport = viewport.New(contentWidth, vpHeight)
	m.viewport.SetContent(content)
	m.ready = true
}

// Init implements tea.Model.
func (m Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			m.Visible = false
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	if !m.ready {
		m.buildViewport()
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(64).
		Align(lipgloss.Center)
	title := titleStyle.Render("Keyboard Shortcuts")

	content := title + "\n\n" + m.viewport.View()

	box := lipgloss.NewStyle().
		Width(70).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)

	return box
}
