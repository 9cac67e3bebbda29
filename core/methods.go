package core

import (
	"fmt"
	"maps"
	"slices"
)

// AddNode registers id with the given successors, in order.
// Successors are not registered as nodes themselves.
// Returns ErrDuplicateNode if id already has an adjacency entry and
// ErrLoopNotAllowed if id lists itself while loops are disabled.
// Complexity: O(k) for k successors.
func (g *Graph) AddNode(id NodeID, successors ...NodeID) error {
	// 1. Loop policy
	if !g.allowLoops && slices.Contains(successors, id) {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Reject redefinition
	if _, ok := g.succ[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	// 3. Store a private copy (never nil, so HasNode works for sinks)
	g.succ[id] = append(make([]NodeID, 0, len(successors)), successors...)
	g.edgeCount += len(successors)

	return nil
}

// AddEdge appends to as the last successor of from, creating from if needed.
// The target is not registered as a node. Parallel edges are kept: each
// contributes a separate path.
// Returns ErrLoopNotAllowed for from == to while loops are disabled.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(from, to NodeID) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.succ[from]; !ok {
		g.succ[from] = []NodeID{}
	}
	g.succ[from] = append(g.succ[from], to)
	g.edgeCount++

	return nil
}

// HasNode reports whether id has an adjacency entry.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.succ[id]

	return ok
}

// Successors returns a copy of id's successor list in insertion order.
// Returns ErrNodeNotFound if id has no adjacency entry.
// Complexity: O(k).
func (g *Graph) Successors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.succ[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return slices.Clone(s), nil
}

// Nodes returns every key, sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Sorted(maps.Keys(g.succ))
}

// Dangling returns the distinct successors that have no adjacency entry,
// sorted ascending. Terminal sinks show up here.
// Complexity: O(V + E).
func (g *Graph) Dangling() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[NodeID]struct{})
	for _, succ := range g.succ {
		for _, s := range succ {
			if _, ok := g.succ[s]; !ok {
				seen[s] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// NodeCount returns the number of keys.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// EdgeCount returns the total number of successor entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AdjacencyList returns a deep copy of the node → successors mapping.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[NodeID][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[NodeID][]NodeID, len(g.succ))
	for id, s := range g.succ {
		out[id] = slices.Clone(s)
	}

	return out
}

// Clone returns a deep copy of g, options included.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		succ:       make(map[NodeID][]NodeID, len(g.succ)),
		edgeCount:  g.edgeCount,
	}
	for id, s := range g.succ {
		c.succ[id] = slices.Clone(s)
	}

	return c
}
