// Package gridgraph treats a 2D grid of cells as a beam-splitting graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of Empty, Start, Beam and
//     Splitter cells.
//   - BeamGraph converts the cells reachable by a beam entering at Start into
//     a *core.Graph: a beam moves one row down per step; when the cell below
//     is a splitter it continues from both cells beside the splitter instead.
//     Beams leaving the last row, or leaving the grid sideways, end in Sink.
//   - CountSplits is the number of distinct splitters a beam reaches.
//   - CountTimelines is the number of distinct beam paths from Start to
//     Sink, counted with package pathcount.
//   - Trace renders the grid with every reached cell marked as Beam.
//
// Cell identifiers are row-major: NodeID(x, y) = y*Width + x, and
// Sink() = Width*Height.
//
// Complexity:
//
//   - BeamGraph:      O(W×H) time and memory.
//   - CountTimelines: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: the top row holds no Start cell.
//   - ErrInvalidCell: a value or symbol is not one of the four cell kinds.
package gridgraph
