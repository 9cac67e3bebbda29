// Package puzzlegraph solves grid and graph puzzles: tiled outlines, device
// graphs and beam-splitter grids.
//
// 🚀 What is puzzlegraph?
//
//	A small set of packages, each usable on its own:
//		• polygon   – largest rectangles spanned by outline vertices, free or inscribed
//		• core      – thread-safe directed adjacency graph keyed by int64 node IDs
//		• pathcount – memoised path counting with ordered or any-order waypoints
//		• gridgraph – beam-splitter grids as DAGs: splits and timelines
//		• label     – reversible short-name ↔ node ID encoding
//		• parse     – puzzle input readers for all of the above
//
// ✨ Design points
//
//   - Iterative traversals: explicit stacks and worklists, no recursion limits.
//   - Exact integer arithmetic: int64 coordinates, uint64 counts with overflow errors.
//   - Sentinel errors per package, matched with errors.Is.
//
// The puzzlegraph command (cmd/puzzlegraph) wires the packages together:
//
//	puzzlegraph tiles input.txt
//	puzzlegraph paths input.txt --sequence svr,fft,dac,out
//	puzzlegraph beams input.txt --print-map
package puzzlegraph
