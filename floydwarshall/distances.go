package floydwarshall

import (
	"fmt"
	"strings"
)

// DistMatrix is the distance-only APSP result: shortest-path lengths for
// every unordered node pair, with Unreachable marking disconnected pairs.
// It is immutable once returned by FloydWarshall.
type DistMatrix struct {
	m *PackedSymmetric[int64]
}

// newDistMatrix allocates a distance matrix with every pair Unreachable.
func newDistMatrix(n int) (*DistMatrix, error) {
	m, err := NewPackedSymmetric[int64](n)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = Unreachable
	}

	return &DistMatrix{m: m}, nil
}

// Dim returns the number of nodes n.
func (d *DistMatrix) Dim() int { return d.m.Dim() }

// Distance returns the shortest-path length between i and j, or Unreachable
// when no path exists. Symmetric: Distance(i,j) == Distance(j,i).
// Panics on out-of-range indices.
func (d *DistMatrix) Distance(i, j int) int64 {
	return d.m.At(i, j)
}

// HasPath reports whether any path connects i and j.
// Panics on out-of-range indices.
func (d *DistMatrix) HasPath(i, j int) bool {
	return d.m.At(i, j) != Unreachable
}

// String renders the stored lower triangle row by row, with "∞" for
// unreachable pairs. Diagnostic only; the format is not stable.
func (d *DistMatrix) String() string {
	var b strings.Builder
	for j := 0; j < d.m.Dim(); j++ {
		for i := 0; i <= j; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			if v := d.m.At(i, j); v == Unreachable {
				b.WriteString("∞")
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// satAdd adds two non-negative distances, saturating at Unreachable: the
// sentinel absorbs any addend, and finite sums that would overflow clamp to
// the sentinel instead of wrapping.
func satAdd(a, b int64) int64 {
	if a == Unreachable || b == Unreachable {
		return Unreachable
	}
	if a > Unreachable-b {
		return Unreachable
	}

	return a + b
}
