// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// builder.go: Build, Constructor, options and sentinel errors.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by builder.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor run without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a rejected insertion.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor adds nodes and connections to g using cfg.
type Constructor func(g *core.Graph[int], cfg config) error

// config is passed by value to every constructor.
type config struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
}

// Option configures Build.
type Option func(*config)

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn sets the weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Build creates a graph with gopts and runs every constructor on it in order.
func Build(gopts []core.Option, bopts []Option, cons ...Constructor) (*core.Graph[int], error) {
	g := core.New[int](gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// connect joins u and v with a fresh weight. AddEdge mirrors on undirected
// graphs; symmetric additionally emits the reverse arc on directed ones.
func connect(g *core.Graph[int], cfg config, method string, u, v int, symmetric bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}
	if symmetric && !g.Undirected() {
		if err := g.AddArc(v, u, w); err != nil {
			return fmt.Errorf("%s: AddArc(%d→%d, w=%g): %w: %w", method, v, u, w, ErrConstructFailed, err)
		}
	}

	return nil
}

func addNodes(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
}
