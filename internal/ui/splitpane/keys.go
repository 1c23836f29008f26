package splitpane

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sadopc/gosplit/internal/ui/layout"
)

// fastFactor multiplies the nudge step for the shifted keys.
const fastFactor = 5

// KeyMap holds the bindings used to move a focused splitter.
type KeyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	DecreaseFast key.Binding
	IncreaseFast key.Binding
	Cancel       key.Binding
}

// DefaultKeyMap returns arrow key bindings that follow the axis: left/right
// for a horizontal split, up/down for a vertical one.
func DefaultKeyMap(axis layout.Axis) KeyMap {
	dec, inc := "left", "right"
	decHelp, incHelp := "←", "→"
	if axis == layout.Vertical {
		dec, inc = "up", "down"
		decHelp, incHelp = "↑", "↓"
	}
	return KeyMap{
		Decrease: key.NewBinding(
			key.WithKeys(dec),
			key.WithHelp(decHelp, "move splitter"),
		),
		Increase: key.NewBinding(
			key.WithKeys(inc),
			key.WithHelp(incHelp, "move splitter"),
		),
		DecreaseFast: key.NewBinding(
			key.WithKeys("shift+"+dec),
			key.WithHelp("shift+"+decHelp, "move splitter faster"),
		),
		IncreaseFast: key.NewBinding(
			key.WithKeys("shift+"+inc),
			key.WithHelp("shift+"+incHelp, "move splitter faster"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase}
}

// FullHelp returns every binding, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.DecreaseFast, k.IncreaseFast},
		{k.Cancel},
	}
}
