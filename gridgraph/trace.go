package gridgraph

import (
	"strings"
)

// Trace returns a copy of the grid with every cell reached by a beam
// marked as Beam. Start and splitter cells keep their value.
// Errors come from BeamGraph.
func (gg *GridGraph) Trace() (*GridGraph, error) {
	g, err := gg.BeamGraph()
	if err != nil {
		return nil, err
	}

	out := &GridGraph{Width: gg.Width, Height: gg.Height, start: gg.start}
	out.CellValues = make([][]int, gg.Height)
	for y := range gg.CellValues {
		out.CellValues[y] = append([]int(nil), gg.CellValues[y]...)
	}

	sink := gg.Sink()
	for _, id := range g.Nodes() {
		if id == sink {
			continue
		}
		x, y := gg.Coordinate(int(id))
		if out.CellValues[y][x] == Empty {
			out.CellValues[y][x] = Beam
		}
	}

	return out, nil
}

// String renders the grid with one line per row.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow((gg.Width + 1) * gg.Height)
	for y, row := range gg.CellValues {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			b.WriteRune(Symbol(v))
		}
	}

	return b.String()
}
