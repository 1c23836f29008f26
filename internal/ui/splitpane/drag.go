package splitpane

import "github.com/sadopc/gosplit/internal/ui/layout"

// dragState is either idle or dragging.
type dragState interface {
	isDragState()
}

type idle struct{}

// dragging is an active gesture. offset is the committed offset plus every
// delta applied since the press; live is the indicator rectangle placed at
// offset and anchor the last pointer coordinate along the axis that was
// applied to it.
type dragging struct {
	hit    layout.Rect
	live   layout.Rect
	extent int
	offset int
	anchor int
	moving bool
	lo, hi int
}

func (idle) isDragState()     {}
func (dragging) isDragState() {}

// controller tracks a divider drag. It never touches the committed
// position; up hands the new offset back to the caller.
type controller struct {
	axis  layout.Axis
	slop  int
	state dragState
}

func newController(axis layout.Axis, slop int) controller {
	return controller{axis: axis, slop: max(0, slop), state: idle{}}
}

// hitRegion is the divider rectangle grown by the touch slop along the axis.
func (c *controller) hitRegion(divider layout.Rect) layout.Rect {
	return c.axis.Grow(divider, c.slop)
}

// down starts a drag when p falls inside the hit region of the divider in
// res. offset is the committed offset the divider was laid out from; it is
// kept within [lo, hi] while moving. A press during an active drag is
// ignored.
func (c *controller) down(res layout.Result, p layout.Point, offset, lo, hi int) bool {
	if c.active() {
		return false
	}
	hit := c.hitRegion(res.Divider)
	if !hit.ContainsPoint(p) {
		return false
	}
	c.state = dragging{
		hit:    hit,
		live:   res.Divider,
		extent: res.Extent(),
		offset: offset,
		anchor: c.axis.Coord(p),
		moving: c.slop == 0,
		lo:     lo,
		hi:     hi,
	}
	return true
}

// move applies the pointer delta along the axis. It reports whether the
// indicator moved. Without an active drag it does nothing.
func (c *controller) move(p layout.Point) bool {
	d, ok := c.state.(dragging)
	if !ok {
		return false
	}
	if !d.moving {
		if d.hit.ContainsPoint(p) {
			return false
		}
		d.moving = true
	}

	delta := c.axis.Coord(p) - d.anchor
	target := min(max(d.offset+delta, d.lo), d.hi)
	applied := target - d.offset

	d.offset = target
	d.anchor += applied
	start := layout.DividerStart(d.extent, c.axis.Size(d.live), d.offset)
	d.live = c.axis.Shift(d.live, start-c.axis.Start(d.live))
	c.state = d
	return applied != 0
}

// up ends the drag and returns the offset to commit. ok is false without an
// active drag.
func (c *controller) up() (offset int, ok bool) {
	d, active := c.state.(dragging)
	if !active {
		return 0, false
	}
	c.state = idle{}
	return d.offset, true
}

// cancel drops an active drag without committing. It reports whether a drag
// was dropped.
func (c *controller) cancel() bool {
	if !c.active() {
		return false
	}
	c.state = idle{}
	return true
}

func (c *controller) active() bool {
	_, ok := c.state.(dragging)
	return ok
}

// live returns the indicator rectangle of the active drag.
func (c *controller) live() (layout.Rect, bool) {
	d, ok := c.state.(dragging)
	if !ok {
		return layout.Rect{}, false
	}
	return d.live, true
}
