// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket so
//     NeighborIDs on an isolated vertex returns an empty slice, not an error.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate ID and presence under muVert write lock.
//   - Stage 2: Under muEdgeAdj write lock, drop outgoing bucket and scan
//     remaining buckets for edges pointing at id.
//
// Complexity: O(V) for the in-edge scan.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Outgoing (or, for undirected graphs, all incident) edges.
	for to := range g.adjacency[id] {
		if g.directed || to == id {
			g.edgeCount--
			continue
		}
		delete(g.adjacency[to], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)

	// Incoming directed edges.
	if g.directed {
		for _, nbrs := range g.adjacency {
			if _, ok := nbrs[id]; ok {
				delete(nbrs, id)
				g.edgeCount--
			}
		}
	}
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// The returned slice is freshly allocated; callers may retain and mutate it.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// OutDegree returns the number of distinct neighbors reachable in one step
// from id (for undirected graphs: the number of incident neighbors; a
// self-loop counts once).
//
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
