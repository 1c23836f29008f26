// Package events is a pane listing splitter changes as they happen.
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

const maxEntries = 500

// Entry is one line of the log.
type Entry struct {
	At       time.Time
	Axis     layout.Axis
	Offset   int
	Percent  int
	FromUser bool
	Note     string
}

// Model is the event log pane.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	theme    theme.Theme
	styles   theme.Styles
	focused  bool
	width    int
	height   int
}

// New creates an empty event log.
func New(t theme.Theme, s theme.Styles) *Model {
	return &Model{
		viewport: viewport.New(0, 0),
		theme:    t,
		styles:   s,
	}
}

// Record appends a position change.
func (m *Model) Record(e Entry) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	m.entries = append(m.entries, e)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
	m.refresh()
}

// Note appends a free-form line.
func (m *Model) Note(text string) {
	m.Record(Entry{Note: text})
}

// Entries returns the recorded entries, oldest first.
func (m *Model) Entries() []Entry {
	return m.entries
}

// SetSize updates the pane dimensions, border included.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(0, w-2)
	m.viewport.Height = max(0, h-3)
	m.refresh()
}

// Focus marks the pane as receiving keys.
func (m *Model) Focus() { m.focused = true }

// Blur marks the pane as not receiving keys.
func (m *Model) Blur() { m.focused = false }

func (m *Model) refresh() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(m.styles.Hint.Render("drag the divider to see events"))
		return
	}
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = m.formatEntry(e)
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) formatEntry(e Entry) string {
	ts := m.styles.Muted.Render(e.At.Format("15:04:05"))
	if e.Note != "" {
		return ts + " " + m.styles.Hint.Render(e.Note)
	}

	source := m.styles.Subtitle.Render("api ")
	if e.FromUser {
		source = m.styles.Key.Render("user")
	}
	return fmt.Sprintf("%s %s %s %s",
		ts,
		source,
		m.styles.Bold.Render(fmt.Sprintf("%3d%%", e.Percent)),
		m.styles.Value.Render(fmt.Sprintf("@%d %s", e.Offset, e.Axis)),
	)
}

// Update scrolls the viewport while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the bordered pane.
func (m *Model) View() string {
	if m.width < 3 || m.height < 4 {
		return ""
	}

	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}
	header := m.styles.Title.MaxWidth(m.viewport.Width).
		Render(fmt.Sprintf("events (%d)", len(m.entries)))

	return border.
		Width(m.viewport.Width).
		Height(m.viewport.Height + 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View()))
}
