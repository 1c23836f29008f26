package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sadopc/gosplit/internal/ui/msgs"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastExpiredMsg hides the toast shown with the same seq.
type toastExpiredMsg struct{ seq int }

// Toast is a one-line notice overlaid on the top right corner. Each Show
// restarts the timer; an expiry from an earlier Show is ignored.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	duration time.Duration
	seq      int
	maxWidth int
	theme    theme.Theme
}

func NewToast(t theme.Theme) Toast {
	return Toast{theme: t, duration: defaultToastDuration}
}

// SetMaxWidth limits the rendered width, border included. 0 means no limit.
func (m *Toast) SetMaxWidth(w int) {
	m.maxWidth = max(0, w)
}

// Show displays text until duration elapses (3s when duration <= 0).
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	m.seq++
	m.Visible, m.text, m.isError, m.duration = true, text, isError, duration

	seq := m.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case msgs.ToastMsg:
		cmd := m.Show(msg.Text, msg.IsError, msg.Duration)
		return m, cmd
	case toastExpiredMsg:
		if msg.seq == m.seq {
			m.Visible = false
			m.text = ""
		}
	}
	return m, nil
}

func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.theme.Green
	if m.isError {
		fg = m.theme.Red
	}
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg)

	text := m.text
	if m.maxWidth > 0 {
		room := m.maxWidth - style.GetHorizontalFrameSize()
		text = ansi.Truncate(text, max(1, room), "…")
	}
	return style.Render(text)
}
