package polygon

import "fmt"

// Rect is a closed axis-aligned rectangle on the tile grid.
// Min.X <= Max.X and Min.Y <= Max.Y. Zero width or height is allowed:
// such a rectangle is a segment (or a single tile) and still has area.
type Rect struct {
	Min, Max Point
}

// RectFrom returns the rectangle with opposite corners a and b.
func RectFrom(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Area returns the number of tiles covered by r, both borders included.
func (r Rect) Area() int64 {
	return (r.Max.X - r.Min.X + 1) * (r.Max.Y - r.Min.Y + 1)
}

// Degenerate reports whether r has zero width or zero height.
func (r Rect) Degenerate() bool {
	return r.Min.X == r.Max.X || r.Min.Y == r.Max.Y
}

// Contains reports whether p lies in r, border included.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsStrict reports whether p lies in the open interior of r.
func (r Rect) ContainsStrict(p Point) bool {
	return r.Min.X < p.X && p.X < r.Max.X && r.Min.Y < p.Y && p.Y < r.Max.Y
}

// CrossedBy reports whether the axis-aligned segment a-b passes through the
// interior of r. The segment's stationary coordinate must lie strictly inside
// r's span on that axis, and its extent along its own axis must overlap r's
// span on the other axis. Segments running along r's border or ending on it
// from outside do not cross.
//
// For a degenerate r the overlap test reduces to a strict crossing of r's
// single line, so a segment that cuts straight through a zero-height
// rectangle is still reported.
func (r Rect) CrossedBy(a, b Point) bool {
	switch {
	case a.X == b.X: // vertical segment
		lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
		return r.Min.X < a.X && a.X < r.Max.X && lo < r.Max.Y && hi > r.Min.Y
	case a.Y == b.Y: // horizontal segment
		lo, hi := min(a.X, b.X), max(a.X, b.X)
		return r.Min.Y < a.Y && a.Y < r.Max.Y && lo < r.Max.X && hi > r.Min.X
	}

	return false // diagonal segments never occur in a validated outline
}

// String renders r as "[minX,minY .. maxX,maxY]".
func (r Rect) String() string {
	return fmt.Sprintf("[%s .. %s]", r.Min, r.Max)
}
