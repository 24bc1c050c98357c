// Package floydwarshall computes all-pairs shortest paths (APSP) on
// undirected graphs with non-negative integer weights, optionally
// reconstructing the full sequence of intermediate nodes for every pair.
//
// Overview:
//
//   - All O(n²) distance/path state lives in a PackedSymmetric matrix: one
//     slot per unordered node pair {i,j}, n·(n+1)/2 slots total, addressed
//     by a closed-form triangular index after canonicalizing i ≤ j. This
//     halves memory versus a dense n×n layout and keeps the O(n³)
//     relaxation cache-friendly.
//   - FloydWarshall is the distance-only engine: unreachable pairs hold the
//     Unreachable sentinel and candidates are combined with saturating
//     addition, so sentinel + finite never wraps into a false finite value.
//   - FloydWarshallPaths / FloydWarshallPathsLabeled additionally track the
//     actual shortest path per pair as a Path record (intermediate labels,
//     cached length, exists flag). Existence is explicit rather than
//     sentinel-based, because paths are conditionally composed: a candidate
//     route via k is considered only when both legs exist.
//
// The engines consume a minimal read-only GraphView (node count, dense node
// indices in [0,n), edges, directedness) and never mutate the input graph.
// FromCore adapts a *core.Graph by assigning dense indices in sorted
// vertex-ID order.
//
// Path direction bookkeeping (the crux):
//
//	A path stored for canonical key (a,b) with a < b is the node sequence
//	walking from a to b. When a relaxation splices the legs (n1,k) and
//	(k,n2), each leg is appended forward if its natural order matches the
//	canonical storage order and reversed otherwise. The rebuilt sequence is
//	written as a single replacement — no partially spliced state is ever
//	stored.
//
// Complexity:
//
//	– Time:  O(n³) relaxation (n passes over all pairs), O(E) seeding.
//	– Space: O(n²) — exactly n·(n+1)/2 slots.
//
// Concurrency:
//
//	The computation is single-threaded by default and runs to completion as
//	one bounded pass. WithParallelPairs(w) lets the distance-only engine
//	split the pair plane for each fixed k across w workers (the only safe
//	parallel axis: row/column k is never written during pass k). The
//	path-tracking engine always runs serially and ignores the option.
//
// Errors (sentinel):
//
//	– ErrNilView        if the provided GraphView is nil.
//	– ErrDirectedGraph  if the view reports a directed graph.
//	– ErrNegativeWeight if an edge weight is negative.
//	– ErrVertexRange    if a node or edge endpoint lies outside [0,n).
//	– ErrBadDimension   if n is negative or the packed size overflows.
//	– ErrNilLabelFn     if the labeled engine receives a nil label func.
//
// Unreachable pairs are not errors: query PathExists / HasPath first, then
// read the distance or sequence. Reading a length or path for a pair with
// no path is a programming error and panics, as does indexing a matrix out
// of range.
//
// Example usage:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 1)
//	g.AddEdge("a", "c", 3)
//
//	view, _ := floydwarshall.FromCore(g)
//	pm, err := floydwarshall.FloydWarshallPathsLabeled(view, view.LabelOf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	i, _ := view.IndexOf("a")
//	j, _ := view.IndexOf("c")
//	fmt.Println(pm.PathLen(i, j), pm.PathSeq(i, j)) // 2 [b]
package floydwarshall
