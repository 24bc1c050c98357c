package floydwarshall

// Test-only bridge exposing the private triangular index function so the
// black-box tests can verify the bijection property directly.

// ExportIdx exposes PackedSymmetric.idx for white-box tests.
func ExportIdx[T any](m *PackedSymmetric[T], i, j int) int {
	return m.idx(i, j)
}

// ExportTriangleSize exposes triangleSize for white-box tests.
var ExportTriangleSize = triangleSize
