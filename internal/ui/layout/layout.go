package layout

// Result holds the three regions of a split container, ordered along the
// axis: PaneA, Divider, PaneB. Their sizes along the axis always sum to the
// container extent.
type Result struct {
	Axis    Axis
	PaneA   Rect
	Divider Rect
	PaneB   Rect
}

// Extent returns the total size covered along the axis.
func (r Result) Extent() int {
	return r.Axis.Size(r.PaneA) + r.Axis.Size(r.Divider) + r.Axis.Size(r.PaneB)
}

// Compute splits a width x height container at offset with a divider of
// thickness cells.
//
// The divider starts at offset - thickness/2 and is always thickness cells
// wide, so for an odd thickness the extra cell sits on the trailing side of
// the offset. Everything is clamped into the container: panes shrink to
// zero rather than going negative, a divider at either edge is pushed
// inside so it keeps its full thickness, and a divider wider than the
// container is cut to fit.
func Compute(axis Axis, width, height, thickness, offset int) Result {
	extent := max(0, axis.Extent(width, height))
	cross := max(0, axis.Cross(width, height))
	thickness = max(0, thickness)

	start := DividerStart(extent, thickness, offset)
	end := clamp(start+thickness, 0, extent)

	return Result{
		Axis:    axis,
		PaneA:   axis.Span(0, start, cross),
		Divider: axis.Span(start, end-start, cross),
		PaneB:   axis.Span(end, extent-end, cross),
	}
}

// DividerStart returns where a divider of thickness cells centered on offset
// begins along an axis of extent cells.
func DividerStart(extent, thickness, offset int) int {
	return clamp(offset-thickness/2, 0, max(0, extent-thickness))
}

// Calculate runs one layout pass: it reconciles pos against the container
// extent and computes the regions from the effective offset. ok is false
// when the container has not been measured yet (either dimension <= 0); the
// caller should then keep its previous result and pos is returned as is.
func Calculate(axis Axis, width, height, thickness, minPane int, pos Position) (Result, Position, bool) {
	if width <= 0 || height <= 0 {
		return Result{}, pos, false
	}
	pos = pos.Reconcile(axis.Extent(width, height), minPane)
	return Compute(axis, width, height, thickness, pos.ResolvedOffset()), pos, true
}
