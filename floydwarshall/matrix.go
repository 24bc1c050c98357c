package floydwarshall

import "fmt"

// maxPackedDim bounds the dimension so that n·(n+1)/2 stays representable.
// For n = 2³²-1 (odd) the triangular size n·((n+1)/2) still fits in int64.
const maxPackedDim = 1<<32 - 1

// PackedSymmetric is a symmetric n×n matrix stored as its lower triangle:
// exactly n·(n+1)/2 slots, one per unordered index pair {i,j} including the
// diagonal. Both orientations of a pair map onto the same slot, so
// M[i][j] == M[j][i] holds by construction.
//
// Out-of-range access is a programming error and panics; symmetric
// canonicalization is not bounds checking.
type PackedSymmetric[T any] struct {
	n    int // matrix order
	data []T // flat triangular backing storage, length n·(n+1)/2
}

// triangleSize returns n·(n+1)/2 without overflowing the intermediate
// product (one of n, n+1 is even).
func triangleSize(n int) int {
	if n%2 == 0 {
		return (n / 2) * (n + 1)
	}

	return n * ((n + 1) / 2)
}

// NewPackedSymmetric allocates an n×n packed symmetric matrix with all
// slots set to the zero value of T.
// Returns ErrBadDimension when n is negative or too large to pack.
// Complexity: O(n²) time and memory (n·(n+1)/2 slots).
func NewPackedSymmetric[T any](n int) (*PackedSymmetric[T], error) {
	if n < 0 || n > maxPackedDim {
		return nil, fmt.Errorf("NewPackedSymmetric: n=%d: %w", n, ErrBadDimension)
	}

	return &PackedSymmetric[T]{n: n, data: make([]T, triangleSize(n))}, nil
}

// idx maps an unordered pair onto its unique triangular offset.
// Canonicalizes to i ≤ j, then applies the closed form j·(j+1)/2 + i:
// column j of the lower triangle starts after the j-th triangular number,
// computed with triangleSize so the intermediate product cannot overflow
// for j up to maxPackedDim.
// The mapping is a bijection from unordered pairs onto [0, n·(n+1)/2).
// Panics on out-of-range indices.
// Complexity: O(1), pure integer arithmetic.
func (m *PackedSymmetric[T]) idx(i, j int) int {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= m.n {
		panic(fmt.Sprintf("floydwarshall: index (%d,%d) out of range for dimension %d", i, j, m.n))
	}

	return triangleSize(j) + i
}

// Dim returns the matrix order n.
func (m *PackedSymmetric[T]) Dim() int { return m.n }

// Len returns the number of physical slots, n·(n+1)/2.
func (m *PackedSymmetric[T]) Len() int { return len(m.data) }

// At returns the value stored for the unordered pair {i,j}.
// At(i,j) and At(j,i) always observe the same slot.
// Panics on out-of-range indices.
func (m *PackedSymmetric[T]) At(i, j int) T {
	return m.data[m.idx(i, j)]
}

// Set stores v for the unordered pair {i,j}; both orientations observe it.
// Panics on out-of-range indices.
func (m *PackedSymmetric[T]) Set(i, j int, v T) {
	m.data[m.idx(i, j)] = v
}

// ref returns a pointer to the slot for {i,j}. Engine-internal: exclusive
// slot access during relaxation, no aliasing between distinct pairs.
func (m *PackedSymmetric[T]) ref(i, j int) *T {
	return &m.data[m.idx(i, j)]
}
