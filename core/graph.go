// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Mutation and query methods of core.Graph.
// Policy:
//   - All exported methods take/release g.mu themselves; none call each other
//     while holding the lock.
//   - Enumeration methods return deterministic (sorted) results so that any
//     index assignment derived from them is reproducible.

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Inserting an existing ID is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// HasVertex reports whether the given vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with the given weight, creating missing
// endpoints automatically.
//
// Validation order: empty IDs → self-loop → weight policy. An unweighted
// graph rejects weight != 0 with ErrBadWeight; negative weights are always
// rejected with ErrNegativeWeight.
//
// If the pair is already connected, the stored weight becomes
// min(old, weight), so duplicate edge input is order-independent.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if weight != 0 && !g.Weighted() {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	g.setArcLocked(from, to, weight)
	if !g.directed {
		g.setArcLocked(to, from, weight)
	}

	return nil
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns every edge exactly once, sorted by (From, To).
// For undirected graphs each edge is reported with From < To.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.adjacent))
	for from, nbrs := range g.adjacent {
		for to, w := range nbrs {
			if !g.directed && from > to {
				continue // undirected pair reported once, smaller ID first
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the edges leaving id, sorted by destination ID.
// For undirected graphs both orientations contribute, so the returned edges
// always have From == id.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	nbrs := g.adjacent[id]
	out := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct edges.
// Undirected edges count once.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adjacent {
		total += len(nbrs)
	}
	if !g.directed {
		total /= 2
	}

	return total
}

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports whether the graph is directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// ensureVertexLocked inserts id if absent. Caller holds g.mu.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
		g.adjacent[id] = make(map[string]int64)
	}
}

// setArcLocked records from→to with min-weight-wins. Caller holds g.mu.
func (g *Graph) setArcLocked(from, to string, weight int64) {
	if old, ok := g.adjacent[from][to]; ok && old <= weight {
		return
	}
	g.adjacent[from][to] = weight
}
