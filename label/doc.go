// Package label maps short textual node names ("you", "svr", "out") to
// core.NodeID values and back.
//
// Each rune of the upper-cased label must have a two-digit code point
// (10–99, which covers ASCII digits and letters); the code points are
// concatenated as decimal digits. "OUT" becomes 798584. Up to MaxRunes runes
// fit into an int64 this way, so the mapping is reversible without a table.
//
// Upper-casing uses golang.org/x/text/cases, so "you" and "YOU" map to the
// same ID.
package label
