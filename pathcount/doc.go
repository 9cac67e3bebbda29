// Package pathcount counts distinct paths between two nodes of a directed
// acyclic core.Graph, optionally through a set of waypoints.
//
// What:
//
//   - Count(start, target): number of paths from start that end on their
//     first arrival at target.
//   - CountVia(start, target, waypoints): waypoints visited in the given
//     order. The sequence [start, w1, …, wk, target] is split into stages;
//     each stage is a separate traversal session whose abort set holds every
//     later node of the sequence. The total is the product of stage counts.
//   - CountThroughAll(start, target, waypoints): waypoints visited in any
//     order. A single session carries the set of still-pending waypoints as
//     a bitmask; a path counts only if the mask is empty at target.
//   - CountPaths: the package-level shorthand for CountVia.
//
// How:
//
//	Each session walks the graph depth-first with an explicit stack (no Go
//	recursion, so graph depth is bounded by memory only) and evaluates a
//	node in this order:
//
//	  1. node in the abort set         → contributes 0
//	  2. (node, pending) in the cache  → cached count
//	  3. node is the target            → 1 if nothing is pending, else 0
//	  4. otherwise                     → sum over successors, then cached
//
//	The cache is owned by its session and dropped with it: a count from a
//	node depends on the abort set and pending waypoints, so sharing entries
//	across sessions would return wrong totals.
//
// Complexity:
//
//   - Count / CountVia: Time O(k·(V+E)) for k stages, Memory O(V).
//   - CountThroughAll:   Time O(2^w·(V+E)) worst case for w waypoints,
//     Memory O(2^w·V); only reachable (node, pending) states are stored.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil.
//   - ErrUnknownNode       (*UnknownNodeError) a node that must be expanded
//     has no adjacency entry.
//   - ErrCycleDetected     (*CycleDetectedError) a node is re-entered while
//     still on the traversal stack.
//   - ErrCountOverflow     a count does not fit in uint64.
//   - ErrInvalidWaypoints  repeated waypoints, or waypoints equal to start or target.
//   - ErrTooManyWaypoints  more than MaxAnyOrderWaypoints for CountThroughAll.
//   - context errors       via WithContext.
package pathcount
