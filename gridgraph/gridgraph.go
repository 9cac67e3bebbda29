package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/puzzlegraph/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidCell for values
// outside Empty..Splitter and ErrNoStart if row 0 has no Start cell.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < Empty || v > Splitter {
				return nil, fmt.Errorf("%w: value %d at %d,%d", ErrInvalidCell, v, x, y)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	start := -1
	for x, v := range cells[0] {
		if v == Start {
			start = x
			break
		}
	}
	if start < 0 {
		return nil, ErrNoStart
	}

	return &GridGraph{Width: w, Height: h, CellValues: cells, start: start}, nil
}

// Start returns the coordinates of the Start cell.
func (gg *GridGraph) Start() (x, y int) {
	return gg.start, 0
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// NodeID returns the graph node of cell (x,y), or Sink if it is out of bounds.
func (gg *GridGraph) NodeID(x, y int) core.NodeID {
	if !gg.InBounds(x, y) {
		return gg.Sink()
	}

	return core.NodeID(gg.index(x, y))
}

// Sink is the node every beam ends in.
func (gg *GridGraph) Sink() core.NodeID {
	return core.NodeID(gg.Width * gg.Height)
}
