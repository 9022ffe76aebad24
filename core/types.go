// This file declares Arc, Graph, Option, sentinel errors and the New
// constructor.

package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was used.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArcNotFound indicates an operation referenced an arc that is not in the graph.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrBadWeight indicates an arc weight that is not a number.
	ErrBadWeight = errors.New("core: weight is NaN")
)

// Arc is a single directed, weighted connection From→To.
type Arc[N cmp.Ordered] struct {
	From   N
	To     N
	Weight float64
}

// Option configures a Graph before first use.
type Option func(*options)

type options struct {
	undirected bool
}

// WithUndirected makes AddEdge insert both directions of every edge.
// AddArc is unaffected and always inserts a single directed arc.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// Graph is an adjacency-map graph over nodes of type N.
//
// adj[from][to] holds the weight of arc from→to. Every node, including nodes
// with no outgoing arcs, owns a (possibly empty) inner map, so the key set of
// adj is exactly the node set.
type Graph[N cmp.Ordered] struct {
	mu         sync.RWMutex
	undirected bool
	adj        map[N]map[N]float64
	arcs       int
}

// New creates an empty Graph configured by opts.
// By default AddEdge inserts a single directed arc.
// Complexity: O(1).
func New[N cmp.Ordered](opts ...Option) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N]{
		undirected: o.undirected,
		adj:        make(map[N]map[N]float64),
	}
}

// FromMap builds a directed Graph from the literal nested-map form
// map[node]map[neighbor]weight. Neighbors that never appear as outer keys are
// still added as nodes.
//
// Errors:
//   - ErrBadWeight if any weight is NaN.
//
// Complexity: O(V + A).
func FromMap[N cmp.Ordered](m map[N]map[N]float64) (*Graph[N], error) {
	g := New[N]()
	for from, nbrs := range m {
		g.AddNode(from)
		for to, w := range nbrs {
			if err := g.AddArc(from, to, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
