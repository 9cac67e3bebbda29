// Package parse reads puzzle inputs into the types of packages polygon,
// core and gridgraph.
//
// Formats:
//
//   - Outline: one "x,y" vertex per line.
//   - Graph:   one "name: succ succ …" entry per line; names go through
//     package label.
//   - Grid:    one row of '.', 'S', '^', '|' characters per line.
//
// Blank lines are skipped. Every error names the offending line as a
// *LineError, which unwraps to the underlying cause (ErrSyntax or a
// package sentinel such as label.ErrInvalidRune).
package parse
