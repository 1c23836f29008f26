package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

// overlayTopRight draws overlay over the first rows of bg, flush with the
// right edge. The base keeps its height so pointer rows stay where they are.
func overlayTopRight(bg, overlay string, width int) string {
	x := width - lipgloss.Width(overlay) - 1
	if x < 0 {
		x = 0
	}
	return overlayAt(bg, overlay, x, 1, width)
}

// overlayAt splices overlay into base at cell (x, y).
func overlayAt(base, overlay string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
