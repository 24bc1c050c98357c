// SPDX-License-Identifier: MIT
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices; C_1/C_2 would need loops or parallels).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i—(i+1 mod n) for i=0..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) when g.Weighted(), else 0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			var w int64
			if useWeight {
				w = cfg.weightFn(cfg.rng)
			}
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
