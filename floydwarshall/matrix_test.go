package floydwarshall_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	fw "github.com/katalvlaran/apsp/floydwarshall"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNewPackedSymmetric_BadDimension(t *testing.T) {
	t.Parallel()

	_, err := fw.NewPackedSymmetric[int64](-1)
	require.True(t, errors.Is(err, fw.ErrBadDimension), "n=-1 must return ErrBadDimension, got %v", err)
}

func TestNewPackedSymmetric_SlotCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 4, 10, 33} {
		m, err := fw.NewPackedSymmetric[int64](n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n*(n+1)/2, m.Len(), "n=%d: slot count must be n(n+1)/2", n)
		require.Equal(t, n, m.Dim())
	}
}

//----------------------------------------------------------------------------//
// The index function — the single most safety-critical invariant.
//----------------------------------------------------------------------------//

// TestIdx_SymmetricBijection exhaustively checks, for representative n, that
// idx(i,j) == idx(j,i) for all pairs and that the image over i ≤ j is
// exactly {0, …, n(n+1)/2 - 1} with no collisions.
func TestIdx_SymmetricBijection(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 8, 13, 32} {
		m, err := fw.NewPackedSymmetric[struct{}](n)
		require.NoError(t, err)

		slots := n * (n + 1) / 2
		seen := make(map[int]bool, slots)
		for j := 0; j < n; j++ {
			for i := 0; i <= j; i++ {
				k := fw.ExportIdx(m, i, j)
				require.Equal(t, k, fw.ExportIdx(m, j, i), "n=%d: idx(%d,%d) != idx(%d,%d)", n, i, j, j, i)
				require.GreaterOrEqual(t, k, 0, "n=%d: idx(%d,%d) below range", n, i, j)
				require.Less(t, k, slots, "n=%d: idx(%d,%d) above range", n, i, j)
				require.False(t, seen[k], "n=%d: idx(%d,%d)=%d collides", n, i, j, k)
				seen[k] = true
			}
		}
		require.Len(t, seen, slots, "n=%d: image must cover every slot", n)
	}
}

func TestTriangleSize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, want int }{
		{0, 0}, {1, 1}, {2, 3}, {3, 6}, {4, 10}, {100, 5050},
	} {
		require.Equal(t, tc.want, fw.ExportTriangleSize(tc.n), "triangleSize(%d)", tc.n)
	}
}

//----------------------------------------------------------------------------//
// Get/Set through both orientations
//----------------------------------------------------------------------------//

func TestPackedSymmetric_BothOrientationsShareSlot(t *testing.T) {
	t.Parallel()

	m, err := fw.NewPackedSymmetric[int64](4)
	require.NoError(t, err)

	m.Set(3, 1, 42)
	require.EqualValues(t, 42, m.At(1, 3))
	require.EqualValues(t, 42, m.At(3, 1))

	m.Set(1, 3, 7) // overwrite via the other orientation
	require.EqualValues(t, 7, m.At(3, 1))

	m.Set(2, 2, 9) // diagonal slot is its own pair
	require.EqualValues(t, 9, m.At(2, 2))
	require.EqualValues(t, 0, m.At(0, 0), "distinct diagonal slots")
}

func TestPackedSymmetric_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	m, err := fw.NewPackedSymmetric[int64](3)
	require.NoError(t, err)

	require.Panics(t, func() { m.At(0, 3) })
	require.Panics(t, func() { m.At(-1, 0) })
	require.Panics(t, func() { m.Set(3, 0, 1) })
}
