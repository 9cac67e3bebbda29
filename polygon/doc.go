// Package polygon finds the largest axis-aligned rectangle spanned by two
// vertices of an integer point set or of a closed rectilinear outline.
//
// What:
//
//   - LargestRect: brute-force maximum over every pair of points, ignoring
//     any containment constraint (upper bound for the inscribed variant).
//   - LargestInscribedRect: maximum over pairs of outline vertices whose
//     rectangle lies inside the closed outline, using corner classification,
//     quadrant reachability, engulfed-vertex and crossing-edge tests.
//   - Outline helpers: validation, orientation (signed area), bounding box,
//     edges, reversal.
//
// Coordinates:
//
//	The grid follows the puzzle's tile map: X grows to the right, Y grows
//	downward (row index). "Clockwise" means clockwise as drawn on that map,
//	i.e. the interior is on the right-hand side of every edge, and the
//	doubled signed area Σ(xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ) is positive.
//
//	Areas count inclusive unit cells: the rectangle spanned by (x1,y1) and
//	(x2,y2) covers (|x1−x2|+1)·(|y1−y2|+1) tiles.
//
// Corner shapes:
//
//	Every outline vertex turns by ±90°. A right turn is a convex corner
//	(interior angle 90°) and admits only its interior quadrant; a left turn
//	is a concave corner (interior angle 270°) and admits every quadrant but
//	the exterior notch. Collinear vertices and reversals are rejected with
//	ErrUnrecognizedCorner.
//
// Tie-break:
//
//	Pairs are scanned in (i, j) order and only a strictly larger area
//	replaces the current best, so the first maximal pair found wins. Both
//	functions are deterministic for a given input order.
//
// Complexity:
//
//   - LargestRect:          Time O(n²), Memory O(1).
//   - LargestInscribedRect: Time O(n³) worst case (O(n) tests per surviving
//     pair, most pairs are pruned by area), Memory O(n).
//
// Errors:
//
//   - ErrInvalidInput        too few points, diagonal or zero-length edges,
//     zero enclosed area.
//   - ErrUnrecognizedCorner  a vertex whose incident edges do not form one of
//     the eight corner shapes.
package polygon
