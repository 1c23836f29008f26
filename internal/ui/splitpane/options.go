package splitpane

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gosplit/internal/ui/layout"
)

// DefaultThickness is the divider width in cells when Options leaves it at 0
// and ZeroThickness is not set.
const DefaultThickness = 1

// Options configures a split pane. The zero value is a horizontal 50% split
// with a one-cell movable divider.
type Options struct {
	Axis      layout.Axis
	Thickness int
	// ZeroThickness allows a divider of width 0, grabbable only through
	// TouchSlop.
	ZeroThickness bool
	Position      layout.Position

	DividerFill  lipgloss.Color
	DraggingFill lipgloss.Color

	// Fixed disables pointer and keyboard moves. SetPosition still works.
	Fixed bool
	// TouchSlop grows the grab region by this many cells on each side of
	// the divider. A drag started in the slop does not move until the
	// pointer leaves the grab region.
	TouchSlop   int
	MinPaneSize int

	Keys     *KeyMap
	Listener Listener
}

func (o Options) thickness() int {
	if o.Thickness > 0 || o.ZeroThickness {
		return max(0, o.Thickness)
	}
	return DefaultThickness
}

func (o Options) keys() KeyMap {
	if o.Keys != nil {
		return *o.Keys
	}
	return DefaultKeyMap(o.Axis)
}
