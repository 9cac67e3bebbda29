package pathcount

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/puzzlegraph/core"
)

// Counter answers path-count queries over one graph. It holds no per-query
// state, so a Counter may be shared by goroutines as long as the graph is
// not mutated concurrently.
type Counter struct {
	graph *core.Graph
	opts  Options
}

// NewCounter validates g and applies opts on top of DefaultOptions.
func NewCounter(g *core.Graph, opts ...Option) (*Counter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Counter{graph: g, opts: o}, nil
}

// CountPaths is shorthand for NewCounter(g, opts...).CountVia(start, target, waypoints).Total.
func CountPaths(g *core.Graph, start, target core.NodeID, waypoints []core.NodeID, opts ...Option) (uint64, error) {
	c, err := NewCounter(g, opts...)
	if err != nil {
		return 0, err
	}
	res, err := c.CountVia(start, target, waypoints)
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}

// Count returns the number of paths from start to target.
func (c *Counter) Count(start, target core.NodeID) (uint64, error) {
	res, err := c.CountVia(start, target, nil)
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}

// CountVia counts paths that visit waypoints in the given order.
// A stage with no path yields a total of 0, not an error.
func (c *Counter) CountVia(start, target core.NodeID, waypoints []core.NodeID) (*Result, error) {
	// 1. Validate
	if err := checkWaypoints(start, target, waypoints); err != nil {
		return nil, err
	}
	seq := make([]core.NodeID, 0, len(waypoints)+2)
	seq = append(seq, start)
	seq = append(seq, waypoints...)
	seq = append(seq, target)

	// 2. One session per stage; later sequence nodes form its abort set.
	res := &Result{Total: 1, Stages: make([]Stage, 0, len(seq)-1)}
	for i := 1; i < len(seq); i++ {
		from, to := seq[i-1], seq[i]
		abort := seq[i+1:]

		s := newSession(c.graph, &c.opts, to, abort)
		n, err := s.count(from)
		if err != nil {
			return nil, fmt.Errorf("stage %s→%s: %w", c.opts.FormatNode(from), c.opts.FormatNode(to), err)
		}
		c.logStage(from, to, abort, n, s.stats)

		total, err := mul(res.Total, n)
		if err != nil {
			return nil, err
		}
		res.Total = total
		res.Stages = append(res.Stages, Stage{
			From:  from,
			To:    to,
			Abort: append([]core.NodeID(nil), abort...),
			Count: n,
			Stats: s.stats,
		})
	}

	return res, nil
}

// CountThroughAll counts paths from start to target that visit every
// waypoint in any order. The result has a single stage.
func (c *Counter) CountThroughAll(start, target core.NodeID, waypoints []core.NodeID) (*Result, error) {
	if len(waypoints) > MaxAnyOrderWaypoints {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, len(waypoints), MaxAnyOrderWaypoints)
	}
	if err := checkWaypoints(start, target, waypoints); err != nil {
		return nil, err
	}

	s := newSession(c.graph, &c.opts, target, nil)
	s.track(waypoints)
	n, err := s.count(start)
	if err != nil {
		return nil, err
	}
	c.logStage(start, target, nil, n, s.stats)

	return &Result{
		Total:  n,
		Stages: []Stage{{From: start, To: target, Count: n, Stats: s.stats}},
	}, nil
}

func (c *Counter) logStage(from, to core.NodeID, abort []core.NodeID, n uint64, st Stats) {
	names := make([]string, len(abort))
	for i, id := range abort {
		names[i] = c.opts.FormatNode(id)
	}
	c.opts.Logger.Debug("stage counted",
		slog.String("from", c.opts.FormatNode(from)),
		slog.String("to", c.opts.FormatNode(to)),
		slog.Any("abort", names),
		slog.Uint64("paths", n),
		slog.Int("expanded", st.Expanded),
		slog.Int("cache_hits", st.CacheHits),
	)
}

// checkWaypoints rejects repeats and waypoints that coincide with an endpoint.
func checkWaypoints(start, target core.NodeID, waypoints []core.NodeID) error {
	seen := make(map[core.NodeID]struct{}, len(waypoints))
	for _, w := range waypoints {
		if w == start || w == target {
			return fmt.Errorf("%w: %d is an endpoint", ErrInvalidWaypoints, w)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %d repeated", ErrInvalidWaypoints, w)
		}
		seen[w] = struct{}{}
	}
	if start == target && len(waypoints) > 0 {
		return fmt.Errorf("%w: start equals target", ErrInvalidWaypoints)
	}

	return nil
}
