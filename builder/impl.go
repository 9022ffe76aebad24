// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl.go: Path, Cycle, Grid and RandomSparse constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes            = 2
	minCycleNodes           = 3
	minGridDim              = 1
	minRandomSparseVertices = 1
)

// Path returns a Constructor for the chain 0→1→...→(n-1).
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		// 1) Validate parameters early; no partial work.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// 2) Add nodes 0..n-1 in ascending order.
		addNodes(g, n)

		// 3) Chain consecutive nodes: (i-1)→i.
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, i-1, i, false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for Path(n) closed by (n-1)→0.
// Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		// 1) Validate parameters early; no partial work.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// 2) Add nodes 0..n-1 in ascending order.
		addNodes(g, n)

		// 3) Chain i→(i+1) mod n; the last step closes the ring.
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, i, (i+1)%n, false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice. Cell (r,c) has id
// r*cols+c and is joined to its right and bottom neighbours. Directed graphs
// also receive the reverse arc with the same weight.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		// 1) Validate parameters early; no partial work.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Add all cells in row-major order.
		addNodes(g, rows*cols)

		// 3) For each (r,c) emit Right then Bottom if present; stable order
		//    keeps weights deterministic for a fixed rng.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c

				// 3a) Right neighbour (r, c+1).
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, u+1, true); err != nil {
						return err
					}
				}

				// 3b) Bottom neighbour (r+1, c).
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, u+cols, true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi style graph on n
// nodes without self-loops. Directed graphs test every ordered pair,
// undirected graphs every unordered pair, each with probability p.
//
// p in (0,1) needs an RNG (ErrNeedRandSource). p = 0 yields isolated nodes
// and p = 1 the complete graph.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		// 1) Validate parameters and the RNG requirement before any work.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add nodes 0..n-1 in ascending order.
		addNodes(g, n)

		// 3) p = 0 and p = 1 are decided without drawing from the rng.
		pick := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		// 4) Visit pairs in (i asc, j asc) order; undirected graphs only see j > i.
		for i := 0; i < n; i++ {
			j := 0
			if g.Undirected() {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !pick() {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
