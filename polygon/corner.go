package polygon

import "fmt"

// Quadrant names one of the four closed quadrants around a vertex.
// North is decreasing Y (up on the tile map).
type Quadrant uint8

const (
	NE Quadrant = iota // X >= vx, Y <= vy
	NW                 // X <= vx, Y <= vy
	SW                 // X <= vx, Y >= vy
	SE                 // X >= vx, Y >= vy
)

var allQuadrants = [4]Quadrant{NE, NW, SW, SE}

// String returns the compass name of q.
func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}

	return fmt.Sprintf("Quadrant(%d)", uint8(q))
}

// signs returns the X and Y growth direction of q.
func (q Quadrant) signs() (sx, sy int64) {
	switch q {
	case NE:
		return 1, -1
	case NW:
		return -1, -1
	case SW:
		return -1, 1
	default:
		return 1, 1
	}
}

// Rect returns q anchored at v and scaled to the given span, i.e. the box
// from v to v + (±w, ±h). Using the outline's bounding-box span guarantees
// every outline vertex in that direction is covered.
func (q Quadrant) Rect(v Point, w, h int64) Rect {
	sx, sy := q.signs()

	return RectFrom(v, Point{X: v.X + sx*w, Y: v.Y + sy*h})
}

// CornerShape classifies an outline vertex by its incoming and outgoing edge
// directions. Convex shapes are right turns (interior angle 90°), concave
// shapes left turns (interior angle 270°) of a clockwise outline. The
// quadrant in each name is the one enclosed between the two edges: the
// interior for convex corners, the exterior notch for concave ones.
type CornerShape uint8

const (
	ConvexNE  CornerShape = iota // left  -> up
	ConvexNW                     // down  -> left
	ConvexSW                     // right -> down
	ConvexSE                     // up    -> right
	ConcaveNE                    // down  -> right
	ConcaveNW                    // right -> up
	ConcaveSW                    // up    -> left
	ConcaveSE                    // left  -> down
)

// cornerShapes is the complete lookup of recognised (in, out) pairs.
var cornerShapes = map[[2]Direction]CornerShape{
	{Left, Up}:    ConvexNE,
	{Down, Left}:  ConvexNW,
	{Right, Down}: ConvexSW,
	{Up, Right}:   ConvexSE,
	{Down, Right}: ConcaveNE,
	{Right, Up}:   ConcaveNW,
	{Up, Left}:    ConcaveSW,
	{Left, Down}:  ConcaveSE,
}

// ClassifyCorner returns the shape of a vertex entered along in and left
// along out. Collinear pairs, reversals and non-unit directions yield
// ErrUnrecognizedCorner.
// Complexity: O(1).
func ClassifyCorner(in, out Direction) (CornerShape, error) {
	shape, ok := cornerShapes[[2]Direction{in, out}]
	if !ok {
		return 0, fmt.Errorf("%w: %s then %s", ErrUnrecognizedCorner, in, out)
	}

	return shape, nil
}

// Convex reports whether s is a 90° interior corner.
func (s CornerShape) Convex() bool {
	return s <= ConvexSE
}

// Enclosed returns the quadrant between the corner's two edges.
func (s CornerShape) Enclosed() Quadrant {
	return Quadrant(s % 4)
}

// Admissible returns the quadrants in which the opposite corner of an
// inscribed rectangle may lie: the single interior quadrant of a convex
// corner, or the three quadrants around a concave corner's notch.
func (s CornerShape) Admissible() []Quadrant {
	enclosed := s.Enclosed()
	if s.Convex() {
		return []Quadrant{enclosed}
	}
	out := make([]Quadrant, 0, 3)
	for _, q := range allQuadrants {
		if q != enclosed {
			out = append(out, q)
		}
	}

	return out
}

// String returns the constant name of s.
func (s CornerShape) String() string {
	kind := "Concave"
	if s.Convex() {
		kind = "Convex"
	}
	if s > ConcaveSE {
		return fmt.Sprintf("CornerShape(%d)", uint8(s))
	}

	return kind + s.Enclosed().String()
}
