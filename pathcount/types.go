package pathcount

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/puzzlegraph/core"
)

// MaxAnyOrderWaypoints bounds CountThroughAll: pending waypoints live in a uint64 mask.
const MaxAnyOrderWaypoints = 64

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("pathcount: graph is nil")

	// ErrUnknownNode matches *UnknownNodeError.
	ErrUnknownNode = errors.New("pathcount: unknown node")

	// ErrCycleDetected matches *CycleDetectedError.
	ErrCycleDetected = errors.New("pathcount: cycle detected")

	// ErrCountOverflow indicates a path count beyond the uint64 range.
	ErrCountOverflow = errors.New("pathcount: path count overflows uint64")

	// ErrInvalidWaypoints indicates a repeated waypoint or one equal to start or target.
	ErrInvalidWaypoints = errors.New("pathcount: invalid waypoints")

	// ErrTooManyWaypoints indicates more than MaxAnyOrderWaypoints for CountThroughAll.
	ErrTooManyWaypoints = errors.New("pathcount: too many waypoints")
)

// UnknownNodeError reports a node that had to be expanded but has no
// adjacency entry in the graph.
type UnknownNodeError struct {
	ID   core.NodeID
	Name string // rendered with the session's node formatter
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("pathcount: unknown node %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownNode) succeed.
func (e *UnknownNodeError) Is(target error) bool { return target == ErrUnknownNode }

// CycleDetectedError reports the node that closed a cycle.
type CycleDetectedError struct {
	ID   core.NodeID
	Name string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("pathcount: cycle detected at node %s", e.Name)
}

// Is makes errors.Is(err, ErrCycleDetected) succeed.
func (e *CycleDetectedError) Is(target error) bool { return target == ErrCycleDetected }

// Option configures a Counter.
type Option func(*Options)

// Options holds the configurable parameters of a Counter.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives one debug record per stage; defaults to a discard logger.
	Logger *slog.Logger

	// FormatNode renders node IDs in logs and errors; defaults to the decimal ID.
	FormatNode func(core.NodeID) string
}

// DefaultOptions returns Options with a background context, a discard
// logger and decimal node formatting.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
		FormatNode: func(id core.NodeID) string {
			return strconv.FormatInt(int64(id), 10)
		},
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNodeFormatter sets how node IDs are rendered. A nil fn is ignored.
func WithNodeFormatter(fn func(core.NodeID) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.FormatNode = fn
		}
	}
}

// Stats are per-session diagnostics.
type Stats struct {
	Expanded  int // nodes whose successors were walked
	CacheHits int // lookups answered by the session cache
}

// Stage is one traversal session of a waypoint query.
//
// Abort holds every node after To in the start, waypoints, target sequence,
// the final target included, so a stage short of the last one reports the
// target in its abort set. On a DAG this never changes a count: a path that
// reached the target before To could not return to To anyway.
type Stage struct {
	From, To core.NodeID
	Abort    []core.NodeID // nodes that zero a path if entered during this stage
	Count    uint64
	Stats    Stats
}

// Result is the outcome of a waypoint query.
type Result struct {
	Total  uint64
	Stages []Stage
}
