package floydwarshall_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/core"
	fw "github.com/katalvlaran/apsp/floydwarshall"
)

// gonumFromView rebuilds the view's edge set as a gonum weighted
// undirected graph sharing the same node index space.
func gonumFromView(t *testing.T, view *fw.CoreView) *simple.WeightedUndirectedGraph {
	t.Helper()
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < view.NodeCount(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range view.Edges() {
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.U),
			T: simple.Node(e.V),
			W: float64(e.Weight),
		})
	}
	return g
}

// TestAgainstGonum cross-checks every pairwise distance against gonum's
// Floyd-Warshall over a batch of seeded random graphs.
func TestAgainstGonum(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.Option{
				builder.WithSeed(seed),
				builder.WithWeightFn(func(r *rand.Rand) int64 { return 1 + int64(r.Intn(30)) }),
			},
			builder.RandomSparse(10, 0.3),
		)
		if err != nil {
			t.Fatalf("seed %d: BuildGraph: %v", seed, err)
		}
		view, err := fw.FromCore(g)
		if err != nil {
			t.Fatalf("seed %d: FromCore: %v", seed, err)
		}

		got, err := fw.FloydWarshall(view)
		if err != nil {
			t.Fatalf("seed %d: FloydWarshall: %v", seed, err)
		}

		ref, ok := path.FloydWarshall(gonumFromView(t, view))
		if !ok {
			t.Fatalf("seed %d: gonum reported a negative cycle", seed)
		}

		n := view.NodeCount()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				w := ref.Weight(int64(i), int64(j))
				if math.IsInf(w, 1) {
					if got.HasPath(i, j) {
						t.Errorf("seed %d: (%d,%d) reachable here, unreachable in reference", seed, i, j)
					}
					continue
				}
				if !got.HasPath(i, j) {
					t.Errorf("seed %d: (%d,%d) unreachable here, reference %g", seed, i, j, w)
					continue
				}
				if got.Distance(i, j) != int64(w) {
					t.Errorf("seed %d: d(%d,%d) = %d; reference %g",
						seed, i, j, got.Distance(i, j), w)
				}
			}
		}
	}
}
