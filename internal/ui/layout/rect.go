package layout

// Point is a cell coordinate relative to the container origin.
type Point struct {
	X, Y int
}

// Rect is a region of cells. Lower bounds are inclusive and upper bounds
// exclusive, so a point on the leading edge is inside and a point on the
// trailing edge belongs to the next region.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a Rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(0, width), Height: max(0, height)}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
