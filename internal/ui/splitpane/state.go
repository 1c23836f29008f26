package splitpane

import "github.com/sadopc/gosplit/internal/ui/layout"

// SavedState is the part of a split pane that survives teardown. The host
// decides where to keep it.
type SavedState struct {
	Axis       layout.Axis `json:"axis"`
	ByFraction bool        `json:"by_fraction"`
	Offset     int         `json:"offset"`
	Fraction   float64     `json:"fraction"`
}

// Position returns the authoritative position recorded in s.
func (s SavedState) Position() layout.Position {
	if s.ByFraction {
		return layout.Fraction(s.Fraction)
	}
	return layout.Offset(s.Offset)
}

// Snapshot captures the committed position. Fraction is always filled in
// with the latest derived value so offset snapshots stay readable.
func (m *Model) Snapshot() SavedState {
	s := SavedState{
		Axis:       m.axis,
		ByFraction: m.pos.IsFraction(),
		Fraction:   m.pos.ResolvedFraction(),
	}
	if m.pos.IsOffset() {
		s.Offset = int(m.pos.Configured())
	} else {
		s.Offset = m.pos.ResolvedOffset()
	}
	return s
}

// Restore applies a snapshot without notifying listeners. A snapshot taken
// on the other axis is ignored, since offsets along one axis mean nothing on
// the other.
func (m *Model) Restore(s SavedState) error {
	if s.Axis != m.axis {
		m.log.Debug("ignoring saved state for other axis", "saved", s.Axis, "axis", m.axis)
		return nil
	}
	m.drag.cancel()
	m.pos = s.Position().Reconcile(m.extent(), m.minPane)
	return m.Layout()
}
