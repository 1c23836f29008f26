package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/msgs"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	axis    layout.Axis
	percent int
	offset  int
	extent  int
	moved   time.Time
	focus   msgs.PanelFocus
	mode    msgs.AppMode
	message string
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetSplit sets the splitter readout.
func (m *StatusBar) SetSplit(axis layout.Axis, percent, offset, extent int) {
	m.axis = axis
	m.percent = percent
	m.offset = offset
	m.extent = extent
}

// SetMoved records when the splitter last changed.
func (m *StatusBar) SetMoved(at time.Time) {
	m.moved = at
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetFocus sets the focused region shown on the right.
func (m *StatusBar) SetFocus(f msgs.PanelFocus) {
	m.focus = f
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message. A positive duration returns a
// command that clears it.
func (m *StatusBar) SetMessage(text string, d time.Duration) tea.Cmd {
	m.message = text
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Message returns the current temporary message.
func (m StatusBar) Message() string {
	return m.message
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		m.message = ""
	case msgs.SetModeMsg:
		m.mode = msg.Mode
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	cell := func(fg lipgloss.Color, bold bool, s string) string {
		return lipgloss.NewStyle().
			Foreground(fg).
			Background(m.theme.Surface).
			Bold(bold).
			Render(s)
	}

	// Left section: splitter readout or the temporary message
	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, cell(m.theme.Text, false, m.message))
	} else {
		leftParts = append(leftParts,
			cell(m.theme.Mauve, true, m.axis.String()),
			cell(m.theme.Text, true, fmt.Sprintf("%d%%", m.percent)),
			cell(m.theme.Subtext, false, fmt.Sprintf("%d/%d", m.offset, m.extent)),
		)
		if !m.moved.IsZero() {
			leftParts = append(leftParts, cell(m.theme.Muted, false, "moved "+humanize.Time(m.moved)))
		}
	}
	left := strings.Join(leftParts, " │ ")

	// Center: mode indicator
	modeStyle := m.styles.Mode
	if m.mode == msgs.ModeDrag {
		modeStyle = m.styles.ModeDrag
	}
	modeStr := modeStyle.Render(m.mode.String())

	// Right: focus + hints
	hint := cell(m.theme.Teal, true, "["+m.focus.String()+"]") +
		cell(m.theme.Muted, false, " ?:help  tab:focus  q:quit")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.MaxWidth(max(1, m.width)).Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := max(1, remaining/2)
	gap2 := max(1, remaining-gap1)

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}
