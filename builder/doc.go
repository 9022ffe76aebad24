// SPDX-License-Identifier: MIT

// Package builder generates weighted graph topologies for tests and
// benchmarks of the shortest-path engine.
//
// A Constructor adds nodes and weighted connections to a *core.Graph[int];
// Build creates the graph, applies the builder options and runs each
// constructor in order. Node identifiers are dense indices starting at 0.
//
// Constructors:
//
//   - Path(n):            0-1-...-(n-1)
//   - Cycle(n):           Path(n) closed by (n-1)-0
//   - Grid(rows, cols):   4-neighbourhood lattice, node id r*cols+c
//   - RandomSparse(n, p): each ordered pair (each unordered pair when the
//     graph is undirected) joined with probability p
//
// Weights come from a WeightFn (constant 1 by default). Stochastic choices
// draw from the *rand.Rand installed with WithSeed or WithRand, so a fixed
// seed reproduces the same graph.
//
// Errors are sentinels wrapped with the constructor name:
//
//	g, err := builder.Build(nil, nil, builder.Grid(0, 3))
//	errors.Is(err, builder.ErrTooFewVertices) // true
package builder
