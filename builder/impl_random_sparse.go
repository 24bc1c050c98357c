// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model: Erdős–Rényi-like generator — include each unordered pair
// {i,j} with i<j independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and works without an RNG.
//   - Weight policy: cfg.weightFn(cfg.rng) when g.Weighted(), else 0.
//
// Determinism: stable trial order (i asc, j asc) ⇒ identical graphs for a
// fixed seed.
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		useWeight := g.Weighted()
		rng := cfg.rng

		// Stable trial order over unordered pairs {i,j}, i<j.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if p == probMin {
					continue // empty graph, no trials
				}
				if p < probMax && rng.Float64() > p {
					continue // Bernoulli trial failed
				}
				v := cfg.idFn(j)
				var w int64
				if useWeight {
					w = cfg.weightFn(rng)
				}
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w",
						methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
