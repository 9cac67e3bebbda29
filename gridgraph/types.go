package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoStart indicates the top row has no Start cell.
	ErrNoStart = errors.New("gridgraph: no start cell in the top row")
	// ErrInvalidCell indicates an unknown cell value or symbol.
	ErrInvalidCell = errors.New("gridgraph: invalid cell")
)

// Cell kinds stored in GridGraph.CellValues.
const (
	Empty = iota
	Start
	Beam
	Splitter
)

var symbols = [...]rune{Empty: '.', Start: 'S', Beam: '|', Splitter: '^'}

// Symbol returns the map character for a cell value, or '?' if unknown.
func Symbol(v int) rune {
	if v < 0 || v >= len(symbols) {
		return '?'
	}

	return symbols[v]
}

// CellValue returns the cell value for a map character.
func CellValue(r rune) (int, error) {
	for v, s := range symbols {
		if s == r {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: symbol %q", ErrInvalidCell, r)
}

// GridGraph is an immutable rectangular grid. CellValues[y][x] holds the
// input value; y grows downward.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	start         int // x of the Start cell in row 0
}
