package pathcount

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/puzzlegraph/core"
)

// stateKey identifies a memoised sub-problem: the node being entered and
// the waypoints still pending on arrival.
type stateKey struct {
	node    core.NodeID
	pending uint64
}

// frame is one level of the explicit traversal stack.
type frame struct {
	key  stateKey
	succ []core.NodeID
	next int    // index of the next successor to visit
	sum  uint64 // paths found so far below this node
}

// session is one traversal with its own abort set, waypoint bits and cache.
// It is not reused across stages.
type session struct {
	graph  *core.Graph
	opts   *Options
	target core.NodeID

	abort   map[core.NodeID]struct{}
	bit     map[core.NodeID]uint64 // waypoint → mask bit, any-order mode only
	all     uint64                 // every waypoint bit set
	cache   map[stateKey]uint64
	onStack map[stateKey]struct{} // Gray states

	stats Stats
}

func newSession(g *core.Graph, opts *Options, target core.NodeID, abort []core.NodeID) *session {
	s := &session{
		graph:   g,
		opts:    opts,
		target:  target,
		abort:   make(map[core.NodeID]struct{}, len(abort)),
		bit:     make(map[core.NodeID]uint64),
		cache:   make(map[stateKey]uint64),
		onStack: make(map[stateKey]struct{}),
	}
	for _, id := range abort {
		s.abort[id] = struct{}{}
	}

	return s
}

// track registers waypoints that must all be passed before target counts.
func (s *session) track(waypoints []core.NodeID) {
	for i, id := range waypoints {
		s.bit[id] = 1 << uint(i)
		s.all |= 1 << uint(i)
	}
}

// resolve decides the count for entering node with the given pending mask
// without expanding it. done is false when the node must be expanded.
func (s *session) resolve(node core.NodeID, pending uint64) (key stateKey, count uint64, done bool) {
	// 1. Abort set
	if _, ok := s.abort[node]; ok {
		return stateKey{}, 0, true
	}
	if b, ok := s.bit[node]; ok {
		pending &^= b
	}
	key = stateKey{node: node, pending: pending}

	// 2. Cache
	if v, ok := s.cache[key]; ok {
		s.stats.CacheHits++
		return key, v, true
	}

	// 3. Target
	if node == s.target {
		if pending == 0 {
			return key, 1, true
		}
		return key, 0, true
	}

	return key, 0, false
}

// count returns the number of paths from start to the session target.
func (s *session) count(start core.NodeID) (uint64, error) {
	key, v, done := s.resolve(start, s.all)
	if done {
		return v, nil
	}

	var stack []frame
	push := func(k stateKey) error {
		succ, err := s.graph.Successors(k.node)
		if errors.Is(err, core.ErrNodeNotFound) {
			return &UnknownNodeError{ID: k.node, Name: s.opts.FormatNode(k.node)}
		}
		if err != nil {
			return err
		}
		s.onStack[k] = struct{}{}
		s.stats.Expanded++
		stack = append(stack, frame{key: k, succ: succ})

		return nil
	}
	if err := push(key); err != nil {
		return 0, err
	}

	for len(stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return 0, s.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.succ) {
			child := top.succ[top.next]
			top.next++

			ck, cv, cdone := s.resolve(child, top.key.pending)
			if cdone {
				sum, err := add(top.sum, cv)
				if err != nil {
					return 0, err
				}
				top.sum = sum
				continue
			}
			if _, gray := s.onStack[ck]; gray {
				return 0, &CycleDetectedError{ID: child, Name: s.opts.FormatNode(child)}
			}
			if err := push(ck); err != nil {
				return 0, err
			}
			continue
		}

		// All successors walked: finish the node (Black) and fold into parent.
		fin := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(s.onStack, fin.key)
		s.cache[fin.key] = fin.sum
		if len(stack) == 0 {
			return fin.sum, nil
		}
		parent := &stack[len(stack)-1]
		sum, err := add(parent.sum, fin.sum)
		if err != nil {
			return 0, err
		}
		parent.sum = sum
	}

	return 0, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrCountOverflow
	}

	return sum, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrCountOverflow
	}

	return lo, nil
}
