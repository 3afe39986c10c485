// Package core: mutation and query methods on Graph.
//
// Locking model: every exported method takes the graph mutex exactly
// once (write lock for mutations, read lock for queries); no method
// calls another exported method while holding the lock.
package core

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// AddVertex inserts a vertex with the given ID and attribute.
// Re-adding an existing ID updates its attribute in place.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, attr float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.vertices[id]; ok {
		v.Attr = attr // idempotent re-add updates the attribute

		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Attr: attr}
	g.order = append(g.order, id)

	return nil
}

// AddEdge inserts an edge from→to with the given weight.
// Stage 1 (Validate): endpoints exist, weight policy, loop policy.
// Stage 2 (Execute): append the edge; undirected graphs store one
// record per pair (From/To as given) and report both directions via
// queries, mirroring adjacency-matrix symmetry.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.edges = append(g.edges, &Edge{From: from, To: to, Weight: weight})

	return nil
}

// Vertices returns the vertices in insertion order (copies, detached
// from internal state). Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.vertices[id])
	}

	return out
}

// Edges returns the edges in insertion order (copies). Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored edge records. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether the given ID exists. Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}
