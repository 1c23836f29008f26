package splitpane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sadopc/gosplit/internal/ui/layout"
)

// View renders pane A, the divider and pane B. While dragging, the live
// indicator is painted over the committed layout. A configuration error is
// rendered in place of the layout.
func (m *Model) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			MaxWidth(max(1, m.width)).
			Render(m.err.Error())
	}
	res, ok := m.Result()
	if !ok {
		return ""
	}

	var blocks []string
	if a := fit(m.panes[0].View(), res.PaneA); a != "" {
		blocks = append(blocks, a)
	}
	if d := m.fill(res.Divider, m.dividerStyle()); d != "" {
		blocks = append(blocks, d)
	}
	if b := fit(m.panes[1].View(), res.PaneB); b != "" {
		blocks = append(blocks, b)
	}

	var out string
	if m.axis == layout.Horizontal {
		out = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	if live, ok := m.drag.live(); ok {
		out = m.paintLive(out, live)
	}
	return out
}

func (m *Model) dividerStyle() lipgloss.Style {
	s := lipgloss.NewStyle()
	if m.dividerFill != "" {
		return s.Background(m.dividerFill)
	}
	if m.focused {
		return s.Bold(true)
	}
	return s.Faint(true)
}

func (m *Model) draggingStyle() lipgloss.Style {
	if m.draggingFill != "" {
		return lipgloss.NewStyle().Background(m.draggingFill)
	}
	return lipgloss.NewStyle().Reverse(true)
}

// glyph is drawn in divider cells when no fill color is set.
func (m *Model) glyph(style lipgloss.Style) string {
	if _, isColor := style.GetBackground().(lipgloss.Color); isColor {
		return " "
	}
	if m.axis == layout.Horizontal {
		return "│"
	}
	return "─"
}

// fill paints r with style, one line per row.
func (m *Model) fill(r layout.Rect, style lipgloss.Style) string {
	if r.Empty() {
		return ""
	}
	line := style.Render(strings.Repeat(m.glyph(style), r.Width))
	lines := make([]string, r.Height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// paintLive splices the live rectangle into the rendered rows. The
// rectangle is clipped to the container.
func (m *Model) paintLive(out string, live layout.Rect) string {
	x0, x1 := max(0, live.X), min(m.width, live.Right())
	y0, y1 := max(0, live.Y), min(m.height, live.Bottom())
	if x0 >= x1 || y0 >= y1 {
		return out
	}

	style := m.draggingStyle()
	seg := style.Render(strings.Repeat(m.glyph(style), x1-x0))

	lines := strings.Split(out, "\n")
	for y := y0; y < y1 && y < len(lines); y++ {
		line := lines[y]
		left := ansi.Truncate(line, x0, "")
		if w := ansi.StringWidth(left); w < x0 {
			left += strings.Repeat(" ", x0-w)
		}
		right := ansi.TruncateLeft(line, x1, "")
		lines[y] = left + seg + right
	}
	return strings.Join(lines, "\n")
}

// fit sizes a pane's content to exactly r.
func fit(content string, r layout.Rect) string {
	if r.Empty() {
		return ""
	}
	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		MaxWidth(r.Width).
		MaxHeight(r.Height).
		Render(content)
}
