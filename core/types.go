// Package core defines the Graph type, its options and sentinel errors.
package core

import (
	"errors"
	"sync"
)

var (
	// ErrNodeNotFound indicates an operation referenced a node without an adjacency entry.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called for an existing key.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID identifies a node. Labels are mapped to NodeIDs by package label;
// grid positions by their row-major index.
type NodeID int64

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph with ordered successor lists.
//
// mu guards succ and edgeCount. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow from == to

	succ      map[NodeID][]NodeID // node → successors, in insertion order
	edgeCount int                 // total successor entries
}

// NewGraph creates an empty Graph. Self-loops are rejected unless WithLoops is given.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{succ: make(map[NodeID][]NodeID)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
