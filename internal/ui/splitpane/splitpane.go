// Package splitpane is a two-pane container with a draggable divider.
//
// The container owns the committed splitter position and re-runs the layout
// engine from package layout whenever its size or position changes. Pointer
// presses on the divider start a drag; while dragging only the live
// indicator moves, and the committed position changes when the button is
// released.
package splitpane

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gosplit/internal/logging"
	"github.com/sadopc/gosplit/internal/ui/layout"
)

// Pane is one side of the split.
type Pane interface {
	SetSize(width, height int)
	View() string
}

// Model is the split pane widget. Use New; the zero value is not usable.
type Model struct {
	axis      layout.Axis
	thickness int
	minPane   int
	movable   bool

	pos   layout.Position
	panes []Pane

	width, height int
	origin        layout.Point
	result        layout.Result
	hasResult     bool
	err           error

	drag    controller
	focused bool
	keys    KeyMap

	dividerFill  lipgloss.Color
	draggingFill lipgloss.Color

	subs    []subscription
	nextSub int

	log *slog.Logger
}

// New creates a split pane. Panes are attached later with SetPanes.
func New(opts Options) *Model {
	m := &Model{
		axis:         opts.Axis,
		thickness:    opts.thickness(),
		minPane:      max(0, opts.MinPaneSize),
		movable:      !opts.Fixed,
		pos:          opts.Position,
		drag:         newController(opts.Axis, opts.TouchSlop),
		keys:         opts.keys(),
		dividerFill:  opts.DividerFill,
		draggingFill: opts.DraggingFill,
		log:          logging.New("splitpane"),
	}
	if opts.Listener != nil {
		m.Subscribe(opts.Listener)
	}
	return m
}

// SetPanes replaces the children. Anything other than two panes is reported
// by the next layout pass.
func (m *Model) SetPanes(panes ...Pane) error {
	m.panes = append(m.panes[:0:0], panes...)
	m.drag.cancel()
	return m.Layout()
}

// Panes returns the attached children.
func (m *Model) Panes() []Pane {
	return m.panes
}

// SetSize sets the container size and runs a layout pass. A size change
// drops any drag in progress since its live rectangle belongs to the old
// layout.
func (m *Model) SetSize(width, height int) error {
	if width != m.width || height != m.height {
		if m.drag.cancel() {
			m.log.Debug("drag cancelled by resize")
		}
	}
	m.width, m.height = width, height
	return m.Layout()
}

// Size returns the container size.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// SetOrigin sets the screen cell of the container's top-left corner. Mouse
// coordinates are translated by it.
func (m *Model) SetOrigin(x, y int) {
	m.origin = layout.Point{X: x, Y: y}
}

// Layout runs one layout pass. It fails with ErrChildCount on every call
// until exactly two panes are attached, and publishes no result meanwhile.
// An unmeasured container (either dimension <= 0) keeps the previous result.
func (m *Model) Layout() error {
	if n := len(m.panes); n != 2 {
		m.err = &ChildCountError{Got: n}
		m.log.Error("layout aborted", "err", m.err)
		return m.err
	}
	m.err = nil

	res, pos, ok := layout.Calculate(m.axis, m.width, m.height, m.thickness, m.minPane, m.pos)
	if !ok {
		return nil
	}
	m.pos = pos
	m.result = res
	m.hasResult = true

	m.panes[0].SetSize(res.PaneA.Width, res.PaneA.Height)
	m.panes[1].SetSize(res.PaneB.Width, res.PaneB.Height)
	return nil
}

// Err returns the error of the last layout pass.
func (m *Model) Err() error {
	return m.err
}

// Result returns the last published layout. ok is false before the first
// successful pass and while a configuration error is in effect.
func (m *Model) Result() (res layout.Result, ok bool) {
	if m.err != nil || !m.hasResult {
		return layout.Result{}, false
	}
	return m.result, true
}

// Axis returns the split axis.
func (m *Model) Axis() layout.Axis {
	return m.axis
}

// Thickness returns the divider width in cells.
func (m *Model) Thickness() int {
	return m.thickness
}

// Position returns the committed position.
func (m *Model) Position() layout.Position {
	return m.pos
}

// PositionFraction returns the committed position as a fraction of the
// last known extent. Before the first pass it is the configured fraction,
// or 0 for an offset position.
func (m *Model) PositionFraction() float64 {
	return m.pos.ResolvedFraction()
}

// Percent returns PositionFraction as a 0-100 integer.
func (m *Model) Percent() int {
	return m.pos.Percent()
}

// Offset returns the effective committed offset in cells.
func (m *Model) Offset() int {
	return m.pos.ResolvedOffset()
}

// Movable reports whether pointer and keyboard moves are allowed.
func (m *Model) Movable() bool {
	return m.movable
}

// SetMovable enables or disables pointer and keyboard moves. Disabling
// cancels a drag in progress.
func (m *Model) SetMovable(v bool) {
	m.movable = v
	if !v {
		m.drag.cancel()
	}
}

// Dragging reports whether a drag is in progress.
func (m *Model) Dragging() bool {
	return m.drag.active()
}

// LiveRect returns the drag indicator rectangle while dragging.
func (m *Model) LiveRect() (layout.Rect, bool) {
	return m.drag.live()
}

// SetPosition commits p as the new position, replacing whichever
// representation was authoritative, and notifies listeners with fromUser
// false. The returned command emits a SplitterMovedMsg.
func (m *Model) SetPosition(p layout.Position) tea.Cmd {
	m.drag.cancel()
	return m.commit(p, false)
}

// SetOffset commits an absolute offset in cells.
func (m *Model) SetOffset(n int) tea.Cmd {
	return m.SetPosition(layout.Offset(n))
}

// SetFraction commits a fraction of the container extent.
func (m *Model) SetFraction(f float64) tea.Cmd {
	return m.SetPosition(layout.Fraction(f))
}

// CancelDrag drops a drag in progress without committing it.
func (m *Model) CancelDrag() {
	if m.drag.cancel() {
		m.log.Debug("drag cancelled")
	}
}

// Focus gives the widget keyboard input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard input and cancels a drag.
func (m *Model) Blur() {
	m.focused = false
	m.CancelDrag()
}

// Focused reports whether the widget takes keyboard input.
func (m *Model) Focused() bool {
	return m.focused
}

// KeyMap returns the nudge bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

func (m *Model) commit(p layout.Position, fromUser bool) tea.Cmd {
	m.pos = p.Reconcile(m.extent(), m.minPane)
	// A configuration error stays in m.err; the position changed anyway.
	_ = m.Layout()
	m.log.Debug("splitter position changed",
		"offset", m.Offset(),
		"percent", m.Percent(),
		"from_user", fromUser,
	)
	m.notify(fromUser)
	return m.movedCmd(fromUser)
}

func (m *Model) extent() int {
	return m.axis.Extent(m.width, m.height)
}

// measured reports whether the current size can be laid out. Until it can,
// the published result belongs to an earlier size and must not be edited.
func (m *Model) measured() bool {
	return m.width > 0 && m.height > 0
}

// limits returns the range the divider center may take.
func (m *Model) limits() (lo, hi int) {
	e := m.extent()
	lo, hi = m.minPane, e-m.minPane
	if lo > hi {
		lo, hi = e/2, e/2
	}
	return lo, hi
}
