package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/puzzlegraph/core"
	"github.com/katalvlaran/puzzlegraph/pathcount"
)

// BeamGraph returns the DAG of beam positions reachable from Start.
// Every reached cell is a key; Sink is the only dangling node.
// Returns the first core.Graph error met while adding a node, wrapped with
// the cell it belongs to.
// Complexity: O(W×H) time and memory.
func (gg *GridGraph) BeamGraph() (*core.Graph, error) {
	g := core.NewGraph()
	sink := gg.Sink()

	sx, sy := gg.Start()
	work := []int{gg.index(sx, sy)}
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		id := core.NodeID(u)
		if g.HasNode(id) {
			continue
		}

		x, y := gg.Coordinate(u)
		var next [][2]int
		switch {
		case y == gg.Height-1:
			if err := g.AddNode(id, sink); err != nil {
				return nil, fmt.Errorf("gridgraph: beam node %s: %w", gg.formatNode(id), err)
			}
			continue
		case gg.CellValues[y+1][x] == Splitter:
			next = [][2]int{{x - 1, y + 1}, {x + 1, y + 1}}
		default:
			next = [][2]int{{x, y + 1}}
		}

		succ := make([]core.NodeID, len(next))
		for i, p := range next {
			succ[i] = gg.NodeID(p[0], p[1])
			if succ[i] != sink {
				work = append(work, gg.index(p[0], p[1]))
			}
		}
		if err := g.AddNode(id, succ...); err != nil {
			return nil, fmt.Errorf("gridgraph: beam node %s: %w", gg.formatNode(id), err)
		}
	}

	return g, nil
}

// CountSplits returns how many distinct splitters a beam reaches.
// Each splitter has exactly one cell above it, so this is the number of
// beam nodes with two successors.
func (gg *GridGraph) CountSplits() (int, error) {
	g, err := gg.BeamGraph()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, succ := range g.AdjacencyList() {
		if len(succ) == 2 {
			n++
		}
	}

	return n, nil
}

// CountTimelines returns the number of distinct beam paths from Start to Sink.
func (gg *GridGraph) CountTimelines(opts ...pathcount.Option) (uint64, error) {
	opts = append([]pathcount.Option{pathcount.WithNodeFormatter(gg.formatNode)}, opts...)
	g, err := gg.BeamGraph()
	if err != nil {
		return 0, err
	}
	sx, sy := gg.Start()

	return pathcount.CountPaths(g, gg.NodeID(sx, sy), gg.Sink(), nil, opts...)
}

func (gg *GridGraph) formatNode(id core.NodeID) string {
	if id == gg.Sink() {
		return "sink"
	}
	x, y := gg.Coordinate(int(id))

	return fmt.Sprintf("%d,%d", x, y)
}
