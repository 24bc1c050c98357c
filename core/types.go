// SPDX-License-Identifier: MIT

// Package core defines the Graph, Vertex, and Edge types used across apsp,
// and provides thread-safe primitives for building and querying simple
// graphs (no parallel edges, no self-loops).
//
// A single sync.RWMutex guards all state, so graphs may be built and read
// from multiple goroutines. Weights are int64 and must be non-negative;
// unweighted graphs reject non-zero weights entirely.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - non-zero weight provided to an unweighted graph.
//	ErrNegativeWeight - negative edge weight (never valid in apsp).
//	ErrLoopNotAllowed - self-loop edges are not supported.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a negative edge weight; all apsp algorithms
	// require non-negative weights, so core rejects them at insertion.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted; simple graphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// For undirected graphs Edges reports each edge once with From < To
// (lexicographically); Neighbors reports both orientations.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// It is a simple graph: at most one edge per vertex pair and no self-loops.
// Adding an edge between an already-connected pair keeps the minimum of the
// old and new weight (min-weight-wins), so insertion order never changes
// shortest-path results.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	directed bool // default false: undirected
	weighted bool // allow non-zero weights

	vertices map[string]*Vertex          // vertex ID → Vertex
	adjacent map[string]map[string]int64 // from → to → weight
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		adjacent: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
