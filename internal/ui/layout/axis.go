package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAxis is returned by ParseAxis for unrecognized names.
var ErrUnknownAxis = errors.New("unknown axis")

// Axis is the direction along which a container is split. A Horizontal
// split places the panes side by side and moves the divider along X; a
// Vertical split stacks them and moves the divider along Y.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis accepts "horizontal"/"h" and "vertical"/"v", case-insensitive.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
}

// Extent returns the container size along the axis.
func (a Axis) Extent(width, height int) int {
	if a == Vertical {
		return height
	}
	return width
}

// Cross returns the container size across the axis.
func (a Axis) Cross(width, height int) int {
	if a == Vertical {
		return width
	}
	return height
}

// Coord returns the component of p along the axis.
func (a Axis) Coord(p Point) int {
	if a == Vertical {
		return p.Y
	}
	return p.X
}

// Start returns the leading edge of r along the axis.
func (a Axis) Start(r Rect) int {
	if a == Vertical {
		return r.Y
	}
	return r.X
}

// Size returns the size of r along the axis.
func (a Axis) Size(r Rect) int {
	if a == Vertical {
		return r.Height
	}
	return r.Width
}

// Center returns the axis coordinate of r's center, truncated.
func (a Axis) Center(r Rect) int {
	return a.Start(r) + a.Size(r)/2
}

// Span builds a rect covering [start, start+size) along the axis and the
// full cross extent.
func (a Axis) Span(start, size, cross int) Rect {
	if a == Vertical {
		return NewRect(0, start, cross, size)
	}
	return NewRect(start, 0, size, cross)
}

// Shift moves r by delta along the axis only.
func (a Axis) Shift(r Rect, delta int) Rect {
	if a == Vertical {
		return r.Translate(0, delta)
	}
	return r.Translate(delta, 0)
}

// Grow expands r by n cells on both sides along the axis.
func (a Axis) Grow(r Rect, n int) Rect {
	if n <= 0 {
		return r
	}
	if a == Vertical {
		return Rect{X: r.X, Y: r.Y - n, Width: r.Width, Height: r.Height + 2*n}
	}
	return Rect{X: r.X - n, Y: r.Y, Width: r.Width + 2*n, Height: r.Height}
}
