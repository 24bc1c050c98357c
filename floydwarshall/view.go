package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// ViewEdge is one edge of a GraphView: dense endpoint indices and a
// non-negative weight.
type ViewEdge struct {
	U, V   int
	Weight int64
}

// GraphView is the minimal read-only capability set the engines consume.
// Node identifiers are dense indices in [0, NodeCount); implementations
// enumerate every node and every edge exactly once. The engines only read
// from the view and never mutate the underlying graph.
type GraphView interface {
	// NodeCount reports the total number of nodes n.
	NodeCount() int

	// Directed reports whether the graph is directed. The engines assert
	// false and reject directed views with ErrDirectedGraph.
	Directed() bool

	// Nodes enumerates all node indices, each exactly once.
	Nodes() []int

	// Edges enumerates all edges. For undirected graphs each edge appears
	// once; orientation of (U,V) is irrelevant.
	Edges() []ViewEdge
}

// CoreView adapts a *core.Graph into a GraphView by assigning dense indices
// in ascending sorted vertex-ID order. It snapshots the graph at FromCore
// time; later mutations of the graph are not reflected.
//
// Beyond GraphView it exposes the index↔ID mapping, so reconstructed paths
// can be materialized with vertex IDs as labels (pass LabelOf to
// FloydWarshallPathsLabeled).
type CoreView struct {
	ids      []string       // index → vertex ID, sorted ascending
	index    map[string]int // vertex ID → index
	edges    []ViewEdge
	directed bool
}

// FromCore builds a CoreView over g.
// Returns ErrNilView when g is nil. The graph itself is not retained.
// Complexity: O(V log V + E).
func FromCore(g *core.Graph) (*CoreView, error) {
	if g == nil {
		return nil, ErrNilView
	}

	ids := g.Vertices() // sorted, deterministic index assignment
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	coreEdges := g.Edges()
	edges := make([]ViewEdge, 0, len(coreEdges))
	for _, e := range coreEdges {
		edges = append(edges, ViewEdge{U: index[e.From], V: index[e.To], Weight: e.Weight})
	}

	return &CoreView{
		ids:      ids,
		index:    index,
		edges:    edges,
		directed: g.Directed(),
	}, nil
}

// NodeCount reports the number of nodes.
func (v *CoreView) NodeCount() int { return len(v.ids) }

// Directed reports the directedness of the adapted graph.
func (v *CoreView) Directed() bool { return v.directed }

// Nodes returns all node indices 0..n-1 in ascending order.
func (v *CoreView) Nodes() []int {
	nodes := make([]int, len(v.ids))
	for i := range nodes {
		nodes[i] = i
	}

	return nodes
}

// Edges returns the snapshotted edges. Callers must not mutate the slice.
func (v *CoreView) Edges() []ViewEdge { return v.edges }

// LabelOf returns the vertex ID for node index i.
// Panics on out-of-range i (programmer error, same contract as the
// matrices).
func (v *CoreView) LabelOf(i int) string {
	if i < 0 || i >= len(v.ids) {
		panic(fmt.Sprintf("floydwarshall: node index %d out of range for %d nodes", i, len(v.ids)))
	}

	return v.ids[i]
}

// IndexOf returns the dense index for a vertex ID, if present.
func (v *CoreView) IndexOf(id string) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}
