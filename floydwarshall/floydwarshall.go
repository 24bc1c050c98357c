package floydwarshall

import (
	"fmt"
	"sync"
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall      = "FloydWarshall"
	opFloydWarshallPaths = "FloydWarshallPaths"
)

// FloydWarshall computes all-pairs shortest-path lengths over the view and
// returns a packed DistMatrix.
//
// Phases:
//  1. Validate: non-nil view, undirected, well-formed nodes/edges.
//  2. Seed: every pair Unreachable, diagonal 0, each edge's weight taken
//     min-weight-wins (duplicate edges are insertion-order independent).
//  3. Relax: for each intermediate node k (outermost, fixed k→n1→n2 order)
//     adopt dist(n1,k) + dist(k,n2) when it beats dist(n1,n2), combining
//     with saturating addition so the sentinel never wraps.
//
// The view is only read; the returned matrix is owned by the caller.
// Options: WithParallelPairs splits the pair plane per k across workers.
//
// Complexity: Time O(n³ + E), Space O(n²) (n·(n+1)/2 slots).
func FloydWarshall(view GraphView, opts ...Option) (*DistMatrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := checkView(view)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	d, err := newDistMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	// Each node has distance 0 to itself.
	for _, v := range view.Nodes() {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%s: node %d: %w", opFloydWarshall, v, ErrVertexRange)
		}
		d.m.Set(v, v, 0)
	}

	// Seed direct distances from the edges, min-weight-wins.
	for _, e := range view.Edges() {
		if err = checkEdge(e, n); err != nil {
			return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
		}
		if e.U == e.V {
			continue // self-loop never shortens anything; diagonal stays 0
		}
		if e.Weight < d.m.At(e.U, e.V) {
			d.m.Set(e.U, e.V, e.Weight)
		}
	}

	if cfg.Workers > 1 {
		relaxDistancesParallel(d.m, n, cfg.Workers)
	} else {
		relaxDistances(d.m, n)
	}

	return d, nil
}

// relaxDistances runs the serial O(n³) relaxation with a fixed k→i→j loop
// order for deterministic accumulation. Unreachable legs are skipped before
// any candidate is formed.
func relaxDistances(m *PackedSymmetric[int64], n int) {
	var (
		k, i, j        int
		dik, dkj, cand int64
	)
	for k = 0; k < n; k++ { // outer: intermediate node, must stay outermost
		for i = 0; i < n; i++ {
			dik = m.At(i, k)
			if dik == Unreachable {
				continue // i cannot reach k, no route via k can help
			}
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				dkj = m.At(k, j)
				if dkj == Unreachable {
					continue
				}
				cand = satAdd(dik, dkj)
				if cand < m.At(i, j) {
					m.Set(i, j, cand)
				}
			}
		}
	}
}

// relaxDistancesParallel splits each k pass across workers. Worker w owns
// the rows i ≡ w (mod workers) and only processes pairs with j > i, so
// every unordered pair has exactly one writer. All reads for pass k hit
// row/column k, which pass k never writes: a candidate with an endpoint in
// {i,j} ∩ {k} reduces to the current value and fails the strict-improvement
// test. Hence no locking is required.
func relaxDistancesParallel(m *PackedSymmetric[int64], n, workers int) {
	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(start int) {
				defer wg.Done()
				for i := start; i < n; i += workers {
					dik := m.At(i, k)
					if dik == Unreachable {
						continue
					}
					for j := i + 1; j < n; j++ {
						dkj := m.At(k, j)
						if dkj == Unreachable {
							continue
						}
						cand := satAdd(dik, dkj)
						if cand < m.At(i, j) {
							m.Set(i, j, cand)
						}
					}
				}
			}(w)
		}
		wg.Wait() // pass k must complete before pass k+1 reads its results
	}
}

// FloydWarshallPaths computes all-pairs shortest paths over the view,
// recording each pair's intermediate nodes as raw indices.
// Equivalent to FloydWarshallPathsLabeled with the identity label function.
func FloydWarshallPaths(view GraphView, opts ...Option) (*PathMatrix[int], error) {
	return FloydWarshallPathsLabeled(view, func(i int) int { return i }, opts...)
}

// FloydWarshallPathsLabeled computes all-pairs shortest paths over the
// view, materializing label(i) for every node that appears inside a
// reconstructed path.
//
// Differences from the distance-only engine:
//   - Existence is tracked with an explicit flag instead of a sentinel, so
//     a candidate is formed only when both legs exist. Leg lengths combine
//     with saturating addition; a candidate that saturates is discarded,
//     keeping lengths in agreement with the distance-only engine.
//   - Each unordered pair is processed once (n1 < n2) and k is skipped as
//     an endpoint: an intermediate node cannot be one of the endpoints.
//   - When a candidate wins, the stored path is rebuilt by splicing the
//     (n1,k) leg, k's label, and the (k,n2) leg — each leg reversed when
//     its canonical storage order opposes the traversal direction — and
//     written as one whole-record replacement.
//
// Always serial; Options.Workers is ignored (see Options).
//
// Complexity: Time O(n³) relaxations, each rebuild O(path length);
// Space O(n²) slots plus the stored sequences.
func FloydWarshallPathsLabeled[L any](view GraphView, label func(int) L, opts ...Option) (*PathMatrix[L], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg) // resolved for validation; Workers has no effect here
	}

	if label == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshallPaths, ErrNilLabelFn)
	}

	n, err := checkView(view)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshallPaths, err)
	}

	pm, err := newPathMatrix[L](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshallPaths, err)
	}

	// Each node reaches itself over the empty path.
	for _, v := range view.Nodes() {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%s: node %d: %w", opFloydWarshallPaths, v, ErrVertexRange)
		}
		pm.pathAt(v, v).set(nil, 0)
	}

	// Seed direct edges: no intermediates, min-weight-wins on duplicates.
	for _, e := range view.Edges() {
		if err = checkEdge(e, n); err != nil {
			return nil, fmt.Errorf("%s: %w", opFloydWarshallPaths, err)
		}
		if e.U == e.V {
			continue
		}
		slot := pm.pathAt(e.U, e.V)
		if slot.exists && slot.length <= e.Weight {
			continue
		}
		slot.set(nil, e.Weight)
	}

	var (
		k, n1, n2 int
		cand      int64
	)
	for k = 0; k < n; k++ { // intermediate node, outermost
		kLabel := label(k)
		for n1 = 0; n1 < n; n1++ {
			if n1 == k {
				continue // k cannot be an endpoint of a route via k
			}
			leg1 := pm.pathAt(n1, k)
			if !leg1.exists {
				continue
			}
			for n2 = n1 + 1; n2 < n; n2++ { // each unordered pair once
				if n2 == k {
					continue
				}
				leg2 := pm.pathAt(k, n2)
				if !leg2.exists {
					continue
				}
				// Both legs are finite, but their sum may not be.
				cand = satAdd(leg1.length, leg2.length)
				if cand == Unreachable {
					continue
				}
				cur := pm.pathAt(n1, n2)
				if cur.exists && cur.length <= cand {
					continue
				}
				cur.set(spliceVia(leg1, leg2, kLabel, n1, n2, k), cand)
			}
		}
	}

	return pm, nil
}

// spliceVia builds the node sequence for the route n1 → k → n2.
// A leg stored under canonical key (a,b), a < b, walks a→b; it is appended
// reversed whenever the traversal runs against that order (n1 > k for the
// first leg, k > n2 for the second). With n1 < n2 the spliced result again
// walks in canonical order.
func spliceVia[L any](leg1, leg2 *Path[L], kLabel L, n1, n2, k int) []L {
	seq := make([]L, 0, len(leg1.seq)+1+len(leg2.seq))
	seq = appendLeg(seq, leg1.seq, n1 > k)
	seq = append(seq, kLabel)
	seq = appendLeg(seq, leg2.seq, k > n2)

	return seq
}

// appendLeg appends src to dst, back to front when reverse is set.
func appendLeg[L any](dst, src []L, reverse bool) []L {
	if reverse {
		for i := len(src) - 1; i >= 0; i-- {
			dst = append(dst, src[i])
		}

		return dst
	}

	return append(dst, src...)
}

// checkView validates the engine preconditions shared by both variants.
func checkView(view GraphView) (int, error) {
	if view == nil {
		return 0, ErrNilView
	}
	if view.Directed() {
		return 0, ErrDirectedGraph
	}

	return view.NodeCount(), nil
}

// checkEdge validates one edge from the view: weight first, then endpoint
// range.
func checkEdge(e ViewEdge, n int) error {
	if e.Weight < 0 {
		return fmt.Errorf("edge (%d,%d) weight=%d: %w", e.U, e.V, e.Weight, ErrNegativeWeight)
	}
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return fmt.Errorf("edge (%d,%d): %w", e.U, e.V, ErrVertexRange)
	}

	return nil
}
