// Package core provides a small, thread-safe directed graph keyed by integer
// node identifiers, with an ordered successor list per node.
//
// The Graph G = (V, E) mirrors the shape of a puzzle adjacency listing:
//
//	aaa: you hhh
//	you: bbb ccc
//
// Every line becomes a node (key) with its successors in input order. A
// successor need not be a key itself: terminal nodes such as "out" often
// appear only on the right-hand side. Algorithms decide whether expanding
// such a node is an error (see pathcount.ErrUnknownNode).
//
// Why use core.Graph?
//
//   - Ordered successors: iteration follows insertion order, so traversals
//     and their tie-breaks are reproducible.
//   - Deterministic enumeration: Nodes() and Dangling() return sorted IDs.
//   - Safe sharing: one sync.RWMutex guards the adjacency map, so a parsed
//     graph can be read by concurrent counters.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddNode(id, successors...) error     // O(k)
//	AddEdge(from, to) error              // O(1) amortised
//	HasNode(id) bool                     // O(1)
//	Successors(id) ([]NodeID, error)     // O(k) copy
//	Nodes() []NodeID                     // O(V·log V)
//	Dangling() []NodeID                  // O(V+E)
//	AdjacencyList() map[NodeID][]NodeID  // O(V+E) deep copy
//	NodeCount(), EdgeCount() int         // O(1)
//	Clone() *Graph                       // O(V+E)
//
// Errors:
//
//	ErrNodeNotFound    - requested node has no adjacency entry.
//	ErrDuplicateNode   - AddNode on an existing key.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core
