package polygon

import (
	"fmt"
	"slices"
)

// LargestRect returns the largest rectangle whose opposite corners are any two
// of pts, without any containment constraint. Every ordered pair (i, j),
// including i == j, is evaluated; only a strictly larger area replaces the
// current best, so the first maximal pair wins.
// Returns ErrInvalidInput if fewer than 2 points are given.
// Complexity: O(n²) time, O(1) memory.
func LargestRect(pts []Point) (Result, error) {
	if len(pts) < 2 {
		return Result{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, len(pts))
	}

	best := Result{A: pts[0], B: pts[0], Area: 1}
	for _, a := range pts {
		for _, b := range pts {
			area := (abs(a.X-b.X) + 1) * (abs(a.Y-b.Y) + 1)
			if area > best.Area {
				best = Result{A: a, B: b, Area: area}
			}
		}
	}

	return best, nil
}

// inscribedSearch holds the derived, read-only geometry of one
// LargestInscribedRect call.
type inscribedSearch struct {
	outline    Outline
	edges      []Edge
	admissible [][]Quadrant // per vertex
	w, h       int64        // bounding-box span used to scale quadrants
}

// LargestInscribedRect returns the largest rectangle whose opposite corners
// are vertices of the rectilinear outline o, listed in either direction, and
// which lies entirely inside the closed outline (border tiles included).
//
// For every ordered vertex pair (p1, p2) it:
//  1. skips the pair unless its area beats the current best;
//  2. requires p2 in one of p1's admissible quadrants and p1 in one of p2's;
//  3. rejects rectangles with an outline vertex strictly inside;
//  4. rejects rectangles whose interior is crossed by an outline edge;
//  5. for zero-width or zero-height rectangles, samples the segment between
//     consecutive vertex coordinates and requires every sample inside o.
//
// Ties keep the first pair found in (i, j) order.
//
// Errors:
//   - ErrInvalidInput if o fails Validate.
//   - ErrUnrecognizedCorner if a vertex is collinear with its neighbours or
//     reverses direction.
func LargestInscribedRect(o Outline) (Result, error) {
	// 1. Preconditions
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	// 2. Derived geometry
	s, err := newInscribedSearch(o)
	if err != nil {
		return Result{}, err
	}
	// 3. Pair scan with area pruning first
	var (
		best  Result
		found bool
	)
	for i, p1 := range o {
		for j, p2 := range o {
			r := RectFrom(p1, p2)
			area := r.Area()
			if found && area <= best.Area {
				continue
			}
			if !s.valid(i, j, r) {
				continue
			}
			best, found = Result{A: p1, B: p2, Area: area}, true
		}
	}

	return best, nil
}

// Inscribes reports whether the rectangle spanned by vertices i and j of o
// passes the same tests LargestInscribedRect applies to a candidate pair.
// Returns ErrInvalidInput for an invalid outline or out-of-range indices.
func (o Outline) Inscribes(i, j int) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if i < 0 || j < 0 || i >= len(o) || j >= len(o) {
		return false, fmt.Errorf("%w: vertex index out of range (%d, %d)", ErrInvalidInput, i, j)
	}
	s, err := newInscribedSearch(o)
	if err != nil {
		return false, err
	}

	return s.valid(i, j, RectFrom(o[i], o[j])), nil
}

// newInscribedSearch classifies corners on the clockwise form of o and keeps
// them indexed like o, so scan order and tie-break follow the caller's order.
func newInscribedSearch(o Outline) (*inscribedSearch, error) {
	bb, err := o.Bounds()
	if err != nil {
		return nil, err
	}
	cw, reversed := o, false
	if !o.Clockwise() {
		cw, reversed = o.Reverse(), true
	}
	shapes, err := cw.Corners()
	if err != nil {
		return nil, err
	}
	if reversed {
		slices.Reverse(shapes)
	}
	adm := make([][]Quadrant, len(shapes))
	for i, shape := range shapes {
		adm[i] = shape.Admissible()
	}

	return &inscribedSearch{
		outline:    o,
		edges:      o.Edges(),
		admissible: adm,
		w:          bb.Width(),
		h:          bb.Height(),
	}, nil
}

// valid runs the geometric tests for the pair (i, j) spanning r.
func (s *inscribedSearch) valid(i, j int, r Rect) bool {
	p1, p2 := s.outline[i], s.outline[j]

	// A: mutual quadrant reachability
	if !s.reaches(i, p2) || !s.reaches(j, p1) {
		return false
	}
	// B: no engulfed vertex
	for _, v := range s.outline {
		if r.ContainsStrict(v) {
			return false
		}
	}
	// C: no crossing edge
	for _, e := range s.edges {
		if r.CrossedBy(e.From, e.To) {
			return false
		}
	}
	// D: degenerate rectangles must not leave the outline between vertices
	if r.Degenerate() && !s.segmentInside(r) {
		return false
	}

	return true
}

// reaches reports whether p lies in one of vertex i's admissible quadrants.
func (s *inscribedSearch) reaches(i int, p Point) bool {
	v := s.outline[i]
	for _, q := range s.admissible[i] {
		if q.Rect(v, s.w, s.h).Contains(p) {
			return true
		}
	}

	return false
}

// segmentInside checks a zero-width or zero-height rectangle by testing the
// midpoint of every stretch between consecutive vertex coordinates along it.
// Inside/outside can only change at a vertex coordinate, so one sample per
// stretch decides the whole segment.
func (s *inscribedSearch) segmentInside(r Rect) bool {
	vertical := r.Min.X == r.Max.X
	lo, hi := r.Min.X, r.Max.X
	if vertical {
		lo, hi = r.Min.Y, r.Max.Y
	}
	if lo == hi {
		return true // single tile on a vertex
	}

	cuts := []int64{lo, hi}
	for _, v := range s.outline {
		c := v.X
		if vertical {
			c = v.Y
		}
		if lo < c && c < hi {
			cuts = append(cuts, c)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	for k := 1; k < len(cuts); k++ {
		mid := cuts[k-1] + cuts[k] // doubled midpoint
		px, py := mid, 2*r.Min.Y
		if vertical {
			px, py = 2*r.Min.X, mid
		}
		if !s.outline.containsDoubled(px, py) {
			return false
		}
	}

	return true
}
