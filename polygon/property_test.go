package polygon_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/puzzlegraph/polygon"
)

// genPoint generates a point in a small grid so that collisions happen.
func genPoint() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(-20, 20),
		gen.Int64Range(-20, 20),
	).Map(func(vals []interface{}) polygon.Point {
		return polygon.Point{X: vals[0].(int64), Y: vals[1].(int64)}
	})
}

// histogram is a skyline outline hanging from y=0: column i spans
// x ∈ [xs[i], xs[i+1]] and y ∈ [0, heights[i]].
type histogram struct {
	outline polygon.Outline
	xs      []int64
	heights []int64
}

// newHistogram merges equal neighbouring heights (they would create collinear
// vertices) and walks the skyline clockwise: along the top, down the right
// side, back along the bottom and up the left side.
func newHistogram(widths, heights []int64) histogram {
	var w2, h2 []int64
	for i := range widths {
		if len(h2) > 0 && h2[len(h2)-1] == heights[i] {
			w2[len(w2)-1] += widths[i]
			continue
		}
		w2 = append(w2, widths[i])
		h2 = append(h2, heights[i])
	}
	xs := []int64{0}
	for _, w := range w2 {
		xs = append(xs, xs[len(xs)-1]+w)
	}

	o := polygon.Outline{{X: 0, Y: 0}, {X: xs[len(xs)-1], Y: 0}}
	for i := len(h2) - 1; i >= 0; i-- {
		o = append(o, polygon.Point{X: xs[i+1], Y: h2[i]}, polygon.Point{X: xs[i], Y: h2[i]})
	}
	o = slices.Compact(o)
	if o[len(o)-1] == o[0] {
		o = o[:len(o)-1]
	}

	return histogram{outline: o, xs: xs, heights: h2}
}

// genHistogram generates skylines of 1..6 columns.
func genHistogram() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(1, 6),
		gen.SliceOfN(6, gen.Int64Range(1, 4)),
		gen.SliceOfN(6, gen.Int64Range(1, 6)),
	).Map(func(vals []interface{}) histogram {
		k := vals[0].(int)
		return newHistogram(vals[1].([]int64)[:k], vals[2].([]int64)[:k])
	})
}

// inside is the containment oracle: the closed rectangle r lies inside the
// skyline iff every column it overlaps is at least as tall as r.Max.Y.
func (h histogram) inside(r polygon.Rect) bool {
	if r.Min.X == r.Max.X {
		for i := range h.heights {
			if h.xs[i] <= r.Min.X && r.Min.X <= h.xs[i+1] && h.heights[i] >= r.Max.Y {
				return true
			}
		}
		return false
	}
	for i := range h.heights {
		if h.xs[i] < r.Max.X && h.xs[i+1] > r.Min.X && h.heights[i] < r.Max.Y {
			return false
		}
	}

	return true
}

// bruteForce returns the largest oracle-approved rectangle area.
func (h histogram) bruteForce() int64 {
	var best int64
	for _, a := range h.outline {
		for _, b := range h.outline {
			r := polygon.RectFrom(a, b)
			if h.inside(r) {
				best = max(best, r.Area())
			}
		}
	}

	return best
}

// TestLargestRect_IsMaximum verifies the unconstrained result dominates every pair.
func TestLargestRect_IsMaximum(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("area equals the maximum over all pairs", prop.ForAll(
		func(points []polygon.Point) bool {
			res, err := polygon.LargestRect(points)
			if err != nil {
				return false
			}
			var want int64
			for _, a := range points {
				for _, b := range points {
					want = max(want, polygon.RectFrom(a, b).Area())
				}
			}
			return res.Area == want &&
				res.Area == polygon.RectFrom(res.A, res.B).Area() &&
				slices.Contains(points, res.A) && slices.Contains(points, res.B)
		},
		gen.SliceOfN(12, genPoint()),
	))

	properties.TestingRun(t)
}

// TestLargestInscribedRect_MatchesOracle compares against brute force on skylines.
func TestLargestInscribedRect_MatchesOracle(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("inscribed area equals oracle maximum", prop.ForAll(
		func(h histogram) bool {
			res, err := polygon.LargestInscribedRect(h.outline)
			if err != nil {
				t.Logf("outline %v: %v", h.outline, err)
				return false
			}
			return res.Area == h.bruteForce() && h.inside(res.Rect())
		},
		genHistogram(),
	))

	properties.Property("reversed outline has the same inscribed area", prop.ForAll(
		func(h histogram) bool {
			cw, err := polygon.LargestInscribedRect(h.outline)
			if err != nil {
				return false
			}
			ccw, err := polygon.LargestInscribedRect(h.outline.Reverse())
			return err == nil && ccw.Area == cw.Area && h.inside(ccw.Rect())
		},
		genHistogram(),
	))

	properties.TestingRun(t)
}

// TestLargestInscribedRect_Invariants checks corner membership, no engulfed
// vertex, no crossing edge, and the unconstrained upper bound.
func TestLargestInscribedRect_Invariants(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result is a clean inscribed rectangle", prop.ForAll(
		func(h histogram) bool {
			o := h.outline
			res, err := polygon.LargestInscribedRect(o)
			if err != nil {
				return false
			}
			if !slices.Contains(o, res.A) || !slices.Contains(o, res.B) {
				return false
			}
			r := res.Rect()
			for _, v := range o {
				if r.ContainsStrict(v) {
					return false
				}
			}
			for _, e := range o.Edges() {
				if r.CrossedBy(e.From, e.To) {
					return false
				}
			}
			upper, err := polygon.LargestRect(o)
			return err == nil && res.Area <= upper.Area
		},
		genHistogram(),
	))

	properties.TestingRun(t)
}
