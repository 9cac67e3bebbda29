package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegraph/core"
	"github.com/katalvlaran/puzzlegraph/gridgraph"
	"github.com/katalvlaran/puzzlegraph/pathcount"
)

const sample = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............`

const sampleTrace = `.......S.......
.......|.......
......|^|......
......|.|......
.....|^|^|.....
.....|.|.|.....
....|^|^|^|....
....|.|.|.|....
...|^|^|||^|...
...|.|.|||.|...
..|^|^|||^|^|..
..|.|.|||.|.|..
.|^|||^||.||^|.
.|.|||.||.||.|.
|^|^|^|^|^|||^|
|.|.|.|.|.|||.|`

// cells converts a textual map into cell values.
func cells(t testing.TB, m string) [][]int {
	t.Helper()
	var out [][]int
	for _, line := range strings.Split(m, "\n") {
		row := make([]int, 0, len(line))
		for _, r := range line {
			v, err := gridgraph.CellValue(r)
			require.NoError(t, err)
			row = append(row, v)
		}
		out = append(out, row)
	}

	return out
}

func mustGrid(t testing.TB, m string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(cells(t, m))
	require.NoError(t, err)

	return gg
}

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 0}, {0}}, gridgraph.ErrNonRectangular},
		{"NoStart", [][]int{{0, 0}, {1, 0}}, gridgraph.ErrNoStart},
		{"BadValue", [][]int{{1, 7}}, gridgraph.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_Copies(t *testing.T) {
	in := [][]int{{0, gridgraph.Start}, {0, 0}}
	gg, err := gridgraph.NewGridGraph(in)
	require.NoError(t, err)
	in[1][0] = gridgraph.Splitter

	assert.Equal(t, gridgraph.Empty, gg.CellValues[1][0])
	x, y := gg.Start()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
}

func TestSymbols(t *testing.T) {
	for v := gridgraph.Empty; v <= gridgraph.Splitter; v++ {
		back, err := gridgraph.CellValue(gridgraph.Symbol(v))
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
	assert.Equal(t, '?', gridgraph.Symbol(9))
	_, err := gridgraph.CellValue('#')
	assert.ErrorIs(t, err, gridgraph.ErrInvalidCell)
}

// TestIndexing checks InBounds, NodeID, Coordinate and Sink on a 3×2 grid.
func TestIndexing(t *testing.T) {
	gg := mustGrid(t, "S..\n...")

	assert.True(t, gg.InBounds(2, 1))
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	assert.Equal(t, core.NodeID(5), gg.NodeID(2, 1))
	assert.Equal(t, gg.Sink(), gg.NodeID(3, 1))
	assert.Equal(t, core.NodeID(6), gg.Sink())

	x, y := gg.Coordinate(4)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})
}

func TestSample(t *testing.T) {
	gg := mustGrid(t, sample)

	g, err := gg.BeamGraph()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{gg.Sink()}, g.Dangling())

	splits, err := gg.CountSplits()
	require.NoError(t, err)
	assert.Equal(t, 21, splits)

	n, err := gg.CountTimelines()
	require.NoError(t, err)
	assert.Equal(t, uint64(40), n)

	trace, err := gg.Trace()
	require.NoError(t, err)
	assert.Equal(t, sampleTrace, trace.String())
	assert.Equal(t, sample, gg.String(), "Trace must not modify the receiver")
}

// TestSidewaysExit sends one branch off the left edge straight into the sink.
func TestSidewaysExit(t *testing.T) {
	gg := mustGrid(t, "S.\n^.\n..")

	g, err := gg.BeamGraph()
	require.NoError(t, err)
	succ, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{gg.Sink(), gg.NodeID(1, 1)}, succ)
	assert.Equal(t, []core.NodeID{gg.Sink()}, g.Dangling())

	splits, err := gg.CountSplits()
	require.NoError(t, err)
	assert.Equal(t, 1, splits)
	n, err := gg.CountTimelines()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestSingleRow(t *testing.T) {
	gg := mustGrid(t, ".S.")
	splits, err := gg.CountSplits()
	require.NoError(t, err)
	assert.Zero(t, splits)
	n, err := gg.CountTimelines(pathcount.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}
