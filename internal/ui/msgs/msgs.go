package msgs

import (
	"time"

	"github.com/sadopc/gosplit/internal/ui/layout"
)

// PanelFocus is the region that receives keyboard input.
type PanelFocus int

const (
	FocusPaneA PanelFocus = iota
	FocusSplitter
	FocusPaneB
)

func (f PanelFocus) String() string {
	switch f {
	case FocusPaneA:
		return "pane A"
	case FocusSplitter:
		return "splitter"
	case FocusPaneB:
		return "pane B"
	default:
		return "unknown"
	}
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeDrag
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDrag:
		return "DRAG"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// SplitterMovedMsg is emitted after the committed splitter position changes.
type SplitterMovedMsg struct {
	Axis     layout.Axis
	Position layout.Position
	Offset   int
	Fraction float64
	FromUser bool
	At       time.Time
}

// CancelDragMsg revokes an in-progress divider drag without committing it.
type CancelDragMsg struct{}

// ResetSplitMsg moves the splitter back to the configured default.
type ResetSplitMsg struct{}

// CopyGeometryMsg copies the current layout geometry to the clipboard.
type CopyGeometryMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}

// PlacementSavedMsg reports the result of persisting a splitter placement.
type PlacementSavedMsg struct {
	ID  int64
	Err error
}
