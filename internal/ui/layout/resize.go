package layout

import tea "github.com/charmbracelet/bubbletea"

const statusBarHeight = 1

// Frame is the terminal split into the content area and the status bar row.
type Frame struct {
	Width         int
	Height        int
	ContentHeight int // height minus the status bar
}

// HandleResize processes a WindowSizeMsg and returns the host frame.
func HandleResize(msg tea.WindowSizeMsg) Frame {
	return Frame{
		Width:         max(0, msg.Width),
		Height:        max(0, msg.Height),
		ContentHeight: max(0, msg.Height-statusBarHeight),
	}
}
