package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFraction is used when no position has been configured.
const DefaultFraction = 0.5

// ErrInvalidPosition is returned by ParsePosition.
var ErrInvalidPosition = errors.New("invalid splitter position")

type unit uint8

const (
	unitUnset unit = iota
	unitOffset
	unitFraction
)

// Position is the divider position along the split axis. Exactly one of the
// offset or the fraction is authoritative; Reconcile derives the other one
// for the extent of the current pass and caches it for readout. The zero
// value behaves as Fraction(DefaultFraction).
type Position struct {
	unit     unit
	offset   int
	fraction float64

	resolved         bool
	extent           int
	resolvedOffset   int
	resolvedFraction float64
}

// Offset returns a position fixed at n cells from the container origin.
func Offset(n int) Position {
	return Position{unit: unitOffset, offset: max(0, n)}
}

// Fraction returns a position at f of the container extent. f is clamped to
// [0, 1]; NaN falls back to DefaultFraction.
func Fraction(f float64) Position {
	switch {
	case math.IsNaN(f):
		f = DefaultFraction
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	return Position{unit: unitFraction, fraction: f}
}

// IsOffset reports whether the offset is authoritative.
func (p Position) IsOffset() bool {
	return p.unit == unitOffset
}

// IsFraction reports whether the fraction is authoritative. The zero value
// counts as a fraction.
func (p Position) IsFraction() bool {
	return p.unit != unitOffset
}

// Configured returns the authoritative value: cells for an offset position,
// a [0, 1] fraction otherwise.
func (p Position) Configured() float64 {
	switch p.unit {
	case unitOffset:
		return float64(p.offset)
	case unitFraction:
		return p.fraction
	default:
		return DefaultFraction
	}
}

// Reconcile derives the non-authoritative representation for extent and
// returns the updated position. The effective offset is clamped so that
// each pane keeps at least minPane cells; the authoritative value itself is
// never rewritten. A non-positive extent returns p unchanged.
func (p Position) Reconcile(extent, minPane int) Position {
	if extent <= 0 {
		return p
	}

	q := p
	q.resolved = true
	q.extent = extent

	if p.unit == unitOffset {
		eff := ClampOffset(p.offset, extent, minPane)
		q.resolvedOffset = eff
		q.resolvedFraction = float64(eff) / float64(extent)
		return q
	}

	f := DefaultFraction
	if p.unit == unitFraction {
		f = p.fraction
	}
	off := int(math.Round(float64(extent) * f))
	eff := ClampOffset(off, extent, minPane)
	q.resolvedOffset = eff
	q.resolvedFraction = f
	if eff != off {
		q.resolvedFraction = float64(eff) / float64(extent)
	}
	return q
}

// Resolved reports whether a pass with a positive extent has run.
func (p Position) Resolved() bool {
	return p.resolved
}

// Extent returns the extent of the last reconciliation, or 0.
func (p Position) Extent() int {
	return p.extent
}

// ResolvedOffset returns the effective offset from the last reconciliation.
// Before any pass it returns the configured offset for offset positions and
// 0 for fractions.
func (p Position) ResolvedOffset() int {
	if p.resolved {
		return p.resolvedOffset
	}
	if p.unit == unitOffset {
		return p.offset
	}
	return 0
}

// ResolvedFraction returns the fraction from the last reconciliation. Before
// any pass it returns the configured fraction, or 0 for offset positions.
func (p Position) ResolvedFraction() float64 {
	if p.resolved {
		return p.resolvedFraction
	}
	if p.unit == unitOffset {
		return 0
	}
	return p.Configured()
}

// Percent returns the resolved fraction as a 0-100 integer.
func (p Position) Percent() int {
	return int(math.Round(p.ResolvedFraction() * 100))
}

// Equal reports whether p and o have the same authoritative value.
func (p Position) Equal(o Position) bool {
	return p.IsOffset() == o.IsOffset() && p.Configured() == o.Configured()
}

// String formats the authoritative value the way ParsePosition reads it.
func (p Position) String() string {
	if p.unit == unitOffset {
		return strconv.Itoa(p.offset)
	}
	return strconv.FormatFloat(p.Configured()*100, 'f', -1, 64) + "%"
}

// ParsePosition reads "40%" or "0.4" as a fraction and "40" as an offset.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Position{}, fmt.Errorf("%w: empty", ErrInvalidPosition)
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || v < 0 || v > 100 {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		return Fraction(v / 100), nil
	}
	if strings.ContainsAny(s, ".eE") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		return Fraction(v), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return Offset(n), nil
}

// ClampOffset limits off so that each pane of a container with the given
// extent keeps at least minPane cells. When both panes cannot fit, the
// container midpoint is returned.
func ClampOffset(off, extent, minPane int) int {
	lo := max(0, minPane)
	hi := extent - lo
	if lo > hi {
		return extent / 2
	}
	return clamp(off, lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
