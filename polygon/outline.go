package polygon

import (
	"fmt"
	"slices"
)

// MinOutlinePoints is the smallest vertex count of a closed rectilinear outline.
const MinOutlinePoints = 4

// Outline is a closed rectilinear polygon: consecutive points (and the last
// and first point) are joined by horizontal or vertical edges. The slice is
// never mutated by this package.
type Outline []Point

// Edge is the directed outline segment from point i to point i+1.
type Edge struct {
	From, To Point
}

// Edges returns the len(o) closing edges of o, the last one running back to o[0].
func (o Outline) Edges() []Edge {
	edges := make([]Edge, len(o))
	for i := range o {
		edges[i] = Edge{From: o[i], To: o[(i+1)%len(o)]}
	}

	return edges
}

// SignedArea2 returns twice the signed shoelace area of o.
// It is positive for outlines that run clockwise on the tile map.
// Complexity: O(n).
func (o Outline) SignedArea2() int64 {
	var s int64
	for i, p := range o {
		q := o[(i+1)%len(o)]
		s += p.X*q.Y - q.X*p.Y
	}

	return s
}

// Clockwise reports whether o runs clockwise on the tile map.
func (o Outline) Clockwise() bool {
	return o.SignedArea2() > 0
}

// Reverse returns a copy of o traversed in the opposite direction.
func (o Outline) Reverse() Outline {
	r := slices.Clone(o)
	slices.Reverse(r)

	return r
}

// Bounds returns the bounding box of o.
func (o Outline) Bounds() (BoundingBox, error) {
	return Bounds(o)
}

// Validate checks the preconditions of LargestInscribedRect:
//   - at least MinOutlinePoints vertices
//   - every edge, including the closing one, is horizontal or vertical and non-empty
//   - non-zero enclosed area
//
// Orientation is not checked: LargestInscribedRect accepts either direction.
//
// All failures wrap ErrInvalidInput.
func (o Outline) Validate() error {
	// 1. Size check
	if len(o) < MinOutlinePoints {
		return fmt.Errorf("%w: outline needs at least %d points, got %d",
			ErrInvalidInput, MinOutlinePoints, len(o))
	}
	// 2. Axis-aligned, non-zero edges
	for i, e := range o.Edges() {
		if _, err := DirectionBetween(e.From, e.To); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	// 3. Enclosed area
	if o.SignedArea2() == 0 {
		return fmt.Errorf("%w: outline encloses no area", ErrInvalidInput)
	}

	return nil
}

// Corners classifies every vertex of o. The outline must already be valid.
// Returns ErrUnrecognizedCorner, wrapped with the vertex index, for collinear
// or reversing vertices.
// Complexity: O(n).
func (o Outline) Corners() ([]CornerShape, error) {
	n := len(o)
	shapes := make([]CornerShape, n)
	for i := range o {
		prev, next := o[(i+n-1)%n], o[(i+1)%n]
		in, err := DirectionBetween(prev, o[i])
		if err != nil {
			return nil, err
		}
		out, err := DirectionBetween(o[i], next)
		if err != nil {
			return nil, err
		}
		if shapes[i], err = ClassifyCorner(in, out); err != nil {
			return nil, fmt.Errorf("vertex %d (%s): %w", i, o[i], err)
		}
	}

	return shapes, nil
}

// containsDoubled reports whether the point (px/2, py/2) lies in the closed
// region bounded by o. Callers pass doubled coordinates so that midpoints
// between integer vertices stay integral. Boundary points count as inside.
func (o Outline) containsDoubled(px, py int64) bool {
	n := len(o)
	// 1. Boundary: any edge containing the point
	for i := range o {
		a, b := o[i], o[(i+1)%n]
		ax, ay, bx, by := 2*a.X, 2*a.Y, 2*b.X, 2*b.Y
		if min(ax, bx) <= px && px <= max(ax, bx) && min(ay, by) <= py && py <= max(ay, by) {
			return true
		}
	}
	// 2. Ray cast to +X counting vertical edges with half-open Y span
	inside := false
	for i := range o {
		a, b := o[i], o[(i+1)%n]
		if a.X != b.X {
			continue
		}
		lo, hi := 2*min(a.Y, b.Y), 2*max(a.Y, b.Y)
		if lo <= py && py < hi && 2*a.X > px {
			inside = !inside
		}
	}

	return inside
}
