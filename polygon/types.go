package polygon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a point set or outline that violates the
	// preconditions of the requested operation.
	ErrInvalidInput = errors.New("polygon: invalid input")

	// ErrUnrecognizedCorner indicates a vertex whose incoming and outgoing
	// edge directions match none of the eight corner shapes.
	ErrUnrecognizedCorner = errors.New("polygon: unrecognized corner")
)

// Point is an integer grid position. X grows right, Y grows down.
type Point struct {
	X, Y int64
}

// String renders the point the way the puzzle input writes it: "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// BoundingBox is the smallest closed axis-aligned box containing a point set.
// Min.X <= Max.X and Min.Y <= Max.Y always hold.
type BoundingBox struct {
	Min, Max Point
}

// Width returns Max.X - Min.X (coordinate span, not tile count).
func (b BoundingBox) Width() int64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y (coordinate span, not tile count).
func (b BoundingBox) Height() int64 { return b.Max.Y - b.Min.Y }

// Bounds computes the bounding box of pts.
// Returns ErrInvalidInput if pts is empty.
// Complexity: O(n).
func Bounds(pts []Point) (BoundingBox, error) {
	if len(pts) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: bounding box of empty point set", ErrInvalidInput)
	}
	bb := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bb.Min.X = min(bb.Min.X, p.X)
		bb.Min.Y = min(bb.Min.Y, p.Y)
		bb.Max.X = max(bb.Max.X, p.X)
		bb.Max.Y = max(bb.Max.Y, p.Y)
	}

	return bb, nil
}

// Direction is the unit vector of an axis-aligned outline edge.
type Direction struct {
	DX, DY int64
}

// Edge directions on the tile map (Y grows downward).
var (
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
)

// String returns the compass name of d, or "(dx,dy)" for non-unit vectors.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// DirectionBetween returns the unit direction from a to b.
// Returns ErrInvalidInput when a == b or the segment is diagonal.
func DirectionBetween(a, b Point) (Direction, error) {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	switch {
	case dx == 0 && dy == 0:
		return Direction{}, fmt.Errorf("%w: zero-length edge at %s", ErrInvalidInput, a)
	case dx != 0 && dy != 0:
		return Direction{}, fmt.Errorf("%w: diagonal edge %s -> %s", ErrInvalidInput, a, b)
	}

	return Direction{DX: dx, DY: dy}, nil
}

// Result is the outcome of a largest-rectangle search.
type Result struct {
	A, B Point // opposite corners, in the order they were found
	Area int64 // inclusive tile count
}

// Rect returns the closed rectangle spanned by r.A and r.B.
func (r Result) Rect() Rect {
	return RectFrom(r.A, r.B)
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
