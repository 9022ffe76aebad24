package dijkstra

import (
	"cmp"
	"errors"
	"math"
	"runtime"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSource indicates that the source node does not exist in the graph.
	ErrUnknownSource = errors.New("dijkstra: source node not found in graph")

	// ErrInvalidWeight indicates that a negative arc weight was found.
	ErrInvalidWeight = errors.New("dijkstra: negative arc weight")

	// ErrUnknownNode indicates that a path was requested for a node the tables know nothing about.
	ErrUnknownNode = errors.New("dijkstra: node not found in distance table")

	// ErrUnreachableDestination indicates that a path was requested for a node
	// that was never assigned a finite distance.
	ErrUnreachableDestination = errors.New("dijkstra: destination unreachable from source")

	// ErrBrokenChain indicates a predecessor table that does not lead back to the source.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero, negative or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadConcurrency indicates a worker bound below one.
	ErrBadConcurrency = errors.New("dijkstra: concurrency must be at least 1")
)

// DistanceTable maps every node of the graph to its shortest known distance
// from the source. Unreached nodes hold math.Inf(1).
type DistanceTable[N cmp.Ordered] map[N]float64

// PredecessorTable maps a node to the node preceding it on a shortest path.
// The source and unreached nodes have no entry.
type PredecessorTable[N cmp.Ordered] map[N]N

// Path is an ordered route from source to destination, both inclusive.
type Path[N cmp.Ordered] []N

// Result is the outcome of one ShortestPaths run. It is owned by the caller
// and independent of later runs.
type Result[N cmp.Ordered] struct {
	Source N
	Dist   DistanceTable[N]
	Prev   PredecessorTable[N]
}

// Distance returns the distance to n and whether n is a node of the graph.
func (r *Result[N]) Distance(n N) (float64, bool) {
	d, ok := r.Dist[n]

	return d, ok
}

// Reachable reports whether n was assigned a finite distance.
func (r *Result[N]) Reachable(n N) bool {
	d, ok := r.Dist[n]

	return ok && !math.IsInf(d, 1)
}

// Predecessor returns the node preceding n on its shortest path, if any.
func (r *Result[N]) Predecessor(n N) (N, bool) {
	p, ok := r.Prev[n]

	return p, ok
}

// PathTo reconstructs the shortest route from the source to dest.
// See ReconstructPath for the error contract.
func (r *Result[N]) PathTo(dest N) (Path[N], error) {
	return ReconstructPath(r.Dist, r.Prev, r.Source, dest)
}

// Options configures ShortestPaths and ShortestPathsFrom.
//
// MaxDistance      – nodes whose distance would exceed this value are left at +Inf.
// InfEdgeThreshold – arcs with weight >= this value are never traversed.
// Concurrency      – maximum concurrent runs in ShortestPathsFrom.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Concurrency      int
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithMaxDistance caps exploration at d. Must be >= 0; validated when the run starts.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold marks arcs with weight >= t as impassable.
// Must be > 0; validated when the run starts.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = t
	}
}

// WithConcurrency bounds the number of concurrent runs in ShortestPathsFrom.
// Ignored by ShortestPaths.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// DefaultOptions returns an Options value with no distance cap, no
// impassable arcs and one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Concurrency:      runtime.GOMAXPROCS(0),
	}
}

// buildOptions applies opts over the defaults and validates the outcome.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return cfg, ErrBadMaxDistance
	}
	if math.IsNaN(cfg.InfEdgeThreshold) || cfg.InfEdgeThreshold <= 0 {
		return cfg, ErrBadInfThreshold
	}
	if cfg.Concurrency < 1 {
		return cfg, ErrBadConcurrency
	}

	return cfg, nil
}
