// Package apsp solves the all-pairs-shortest-paths problem on undirected,
// non-negatively-weighted graphs with the Floyd–Warshall algorithm, storing
// the O(n²) distance/path state in a triangular-packed symmetric matrix that
// needs roughly half the memory of a dense layout.
//
// 🚀 What is apsp?
//
//	A small, deterministic APSP toolkit:
//		• floydwarshall/ — packed symmetric matrices, the distance-only engine,
//		  and the path-reconstructing engine (intermediate-node sequences)
//		• core/         — a lean thread-safe undirected graph container
//		• builder/      — deterministic topology generators for fixtures
//		• cmd/apsp/     — an edge-list front end for quick terminal queries
//
// ✨ Why choose apsp?
//
//   - Half-size storage — one slot per unordered vertex pair, addressed by a
//     closed-form triangular index
//   - Real paths, not just lengths — each improved pair gets its full
//     intermediate-node sequence rebuilt and swapped in as one replacement
//   - Deterministic — fixed k→i→j relaxation order, reproducible fixtures
//   - Pure algorithms — the engines read a minimal GraphView and never touch
//     the input graph
//
// Quick ASCII example:
//
//	    a───b
//	     \  │
//	      \ │
//	        c        weights: a—b=1, b—c=1, a—c=3
//
//	The engine settles distance(a,c)=2 with path(a,c) = [b].
//
// Dive into floydwarshall/doc.go for the full contract, complexity notes and
// the error taxonomy.
//
//	go get github.com/katalvlaran/apsp
package apsp
