package app

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/msgs"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.Reset):
		return func() tea.Msg { return msgs.ResetSplitMsg{} }
	case key.Matches(msg, a.keys.CopyGeometry):
		return func() tea.Msg { return msgs.CopyGeometryMsg{} }
	}
	return nil
}

func (a App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CycleFocus):
		a.cycleFocus(false)
		return a, nil
	case key.Matches(msg, a.keys.CycleFocusRev):
		a.cycleFocus(true)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case msgs.FocusPaneA:
		cmd = a.source.Update(msg)
	case msgs.FocusSplitter:
		_, cmd = a.split.Update(msg)
	case msgs.FocusPaneB:
		cmd = a.events.Update(msg)
	}
	return a, cmd
}

func (a *App) cycleFocus(reverse bool) {
	order := []msgs.PanelFocus{msgs.FocusPaneA, msgs.FocusSplitter, msgs.FocusPaneB}

	idx := 0
	for i, p := range order {
		if p == a.focus {
			idx = i
			break
		}
	}

	if reverse {
		idx = (idx - 1 + len(order)) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}

	a.focus = order[idx]
	a.updateFocus()
}

func (a *App) updateFocus() {
	if a.focus == msgs.FocusPaneA {
		a.source.Focus()
	} else {
		a.source.Blur()
	}
	if a.focus == msgs.FocusSplitter {
		a.split.Focus()
	} else {
		a.split.Blur()
	}
	if a.focus == msgs.FocusPaneB {
		a.events.Focus()
	} else {
		a.events.Blur()
	}
	a.statusBar.SetFocus(a.focus)
}

func (a App) copyGeometry() (tea.Model, tea.Cmd) {
	res, ok := a.split.Result()
	if !ok {
		cmd := a.toast.Show("Nothing to copy yet", true, 2*time.Second)
		return a, cmd
	}
	if err := writeClipboard(geometryText(a.split.Axis(), a.split.Position(), res)); err != nil {
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 2*time.Second)
		return a, cmd
	}
	cmd := a.toast.Show("Copied geometry to clipboard", false, 2*time.Second)
	return a, cmd
}

// geometryText renders the computed rectangles as one line per region.
func geometryText(axis layout.Axis, pos layout.Position, res layout.Result) string {
	rect := func(r layout.Rect) string {
		return fmt.Sprintf("x=%d y=%d w=%d h=%d", r.X, r.Y, r.Width, r.Height)
	}
	return fmt.Sprintf("axis=%s position=%s offset=%d percent=%d\npane_a %s\ndivider %s\npane_b %s\n",
		axis, pos, pos.ResolvedOffset(), pos.Percent(),
		rect(res.PaneA), rect(res.Divider), rect(res.PaneB))
}
