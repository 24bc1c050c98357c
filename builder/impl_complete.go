// SPDX-License-Identifier: MIT
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once; core mirrors
//     the reverse arc for undirected graphs.
//   - Weight policy: cfg.weightFn(cfg.rng) when g.Weighted(), else 0.
//
// Complexity: O(n) vertices + O(n²) edges.
// Determinism: stable pair order (i asc, j asc), deterministic weights for a
// fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Precompute IDs once; reused for every pair below.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var w int64
				if useWeight {
					w = cfg.weightFn(cfg.rng)
				}
				if err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodComplete, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}
