package splitpane

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/msgs"
)

// Init returns no command; the widget needs no startup work.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles window size, mouse, key, blur and cancel messages. A
// committed move returns a command that emits msgs.SplitterMovedMsg.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_ = m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.BlurMsg, msgs.CancelDragMsg:
		m.CancelDrag()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := layout.Point{X: msg.X - m.origin.X, Y: msg.Y - m.origin.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.movable || !m.measured() {
			return nil
		}
		res, ok := m.Result()
		if !ok {
			return nil
		}
		lo, hi := m.limits()
		if m.drag.down(res, p, m.Offset(), lo, hi) {
			m.log.Debug("drag started", "x", p.X, "y", p.Y)
		}

	case tea.MouseActionMotion:
		m.drag.move(p)

	case tea.MouseActionRelease:
		offset, ok := m.drag.up()
		if !ok || offset == m.Offset() {
			return nil
		}
		return m.commit(layout.Offset(offset), true)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.drag.active() {
		if key.Matches(msg, m.keys.Cancel) {
			m.CancelDrag()
		}
		return nil
	}
	if !m.focused || !m.movable {
		return nil
	}
	if _, ok := m.Result(); !ok {
		return nil
	}

	step := max(1, m.thickness)
	switch {
	case key.Matches(msg, m.keys.Decrease):
		return m.nudge(-step)
	case key.Matches(msg, m.keys.Increase):
		return m.nudge(step)
	case key.Matches(msg, m.keys.DecreaseFast):
		return m.nudge(-step * fastFactor)
	case key.Matches(msg, m.keys.IncreaseFast):
		return m.nudge(step * fastFactor)
	}
	return nil
}

func (m *Model) nudge(delta int) tea.Cmd {
	if !m.measured() {
		return nil
	}
	lo, hi := m.limits()
	next := min(max(m.Offset()+delta, lo), hi)
	if next == m.Offset() {
		return nil
	}
	return m.commit(layout.Offset(next), true)
}

func (m *Model) movedCmd(fromUser bool) tea.Cmd {
	moved := msgs.SplitterMovedMsg{
		Axis:     m.axis,
		Position: m.pos,
		Offset:   m.Offset(),
		Fraction: m.PositionFraction(),
		FromUser: fromUser,
		At:       time.Now(),
	}
	return func() tea.Msg { return moved }
}
