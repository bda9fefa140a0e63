// Package geom holds the small amount of integer geometry the desktop needs:
// points, sizes, rectangles and min/max clamping.
package geom

// Point is a position in desktop units.
type Point struct {
	X, Y int
}

// Size is a width/height pair in desktop units.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. It spans [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// AtLeast returns v raised to min when it falls below it.
func AtLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// AtMost returns v lowered to max when it exceeds it.
func AtMost(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// Clamp restricts v to [lo, hi]. When the range is inverted (hi < lo) the
// lower bound wins, so an item larger than its container pins to the origin.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return AtLeast(AtMost(v, hi), lo)
}

// ClampPoint keeps an item of the given size inside a container of size
// bounds, i.e. within [0, bounds-size] on each axis.
func ClampPoint(p Point, item, bounds Size) Point {
	return Point{
		X: Clamp(p.X, 0, bounds.Width-item.Width),
		Y: Clamp(p.Y, 0, bounds.Height-item.Height),
	}
}

// FloorDiv divides rounding toward negative infinity. Windows dragged past the
// left or top edge have negative coordinates and must still map to the cell
// they visually occupy.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
