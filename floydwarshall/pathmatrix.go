package floydwarshall

import (
	"fmt"
	"iter"
	"strings"
)

// PathMatrix is the path-tracking APSP result: one Path record per
// unordered node pair, holding the intermediate labels, the cached length
// and the existence flag. It is immutable once returned by the engine.
//
// T is the label type: int node indices for FloydWarshallPaths, or whatever
// the label function of FloydWarshallPathsLabeled produces.
type PathMatrix[T any] struct {
	m *PackedSymmetric[Path[T]]
}

// newPathMatrix allocates a path matrix with every pair in the default
// "no path" state.
func newPathMatrix[T any](n int) (*PathMatrix[T], error) {
	m, err := NewPackedSymmetric[Path[T]](n)
	if err != nil {
		return nil, err
	}

	return &PathMatrix[T]{m: m}, nil
}

// Dim returns the number of nodes n.
func (pm *PathMatrix[T]) Dim() int { return pm.m.Dim() }

// PathExists reports whether any path connects i and j. Symmetric.
// Panics on out-of-range indices.
func (pm *PathMatrix[T]) PathExists(i, j int) bool {
	return pm.m.ref(i, j).exists
}

// PathLen returns the shortest-path length between i and j.
// Panics when no path exists (check PathExists first) and on out-of-range
// indices.
func (pm *PathMatrix[T]) PathLen(i, j int) int64 {
	return pm.m.ref(i, j).Len()
}

// Path returns the stored Path record for {i,j} as a read-only view.
// The record walks from min(i,j) to max(i,j); see Path for the reversal
// rule. Callers must not mutate it.
// Panics on out-of-range indices.
func (pm *PathMatrix[T]) Path(i, j int) *Path[T] {
	return pm.m.ref(i, j)
}

// PathSeq returns a copy of the intermediate labels between i and j in
// canonical min(i,j)→max(i,j) order. Empty when the endpoints are adjacent
// or no path exists.
// Panics on out-of-range indices.
func (pm *PathMatrix[T]) PathSeq(i, j int) []T {
	return pm.m.ref(i, j).Seq()
}

// PathIter returns a lazy, restartable iterator over the intermediate
// labels between i and j in canonical order.
// Panics on out-of-range indices.
func (pm *PathMatrix[T]) PathIter(i, j int) iter.Seq[T] {
	return pm.m.ref(i, j).Iter()
}

// String renders the lower triangle row by row as path lengths, with "∞"
// for pairs without a path. Diagnostic only; the format is not stable.
func (pm *PathMatrix[T]) String() string {
	var b strings.Builder
	for j := 0; j < pm.m.Dim(); j++ {
		for i := 0; i <= j; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			if p := pm.m.ref(i, j); p.exists {
				fmt.Fprintf(&b, "%d", p.length)
			} else {
				b.WriteString("∞")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pathAt returns the mutable slot for {i,j}. Engine-internal only: the
// relaxation step holds exclusive access to the one slot it updates.
func (pm *PathMatrix[T]) pathAt(i, j int) *Path[T] {
	return pm.m.ref(i, j)
}
