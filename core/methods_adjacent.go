// File: methods_adjacent.go
// Role: Neighborhood APIs and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending.
//
// Adjacency policy:
//   - Directed graphs: out-neighbors only.
//   - Undirected graphs: every incident neighbor; a self-loop lists id once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the bucket keys and sort them.
//
// The sorted order is what alias tables downstream index into, so it must be
// stable across calls for an unchanged graph.
//
// Complexity: O(d log d) time, O(d) space.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	nbrs := g.adjacency[id]
	ids := make([]string, 0, len(nbrs))
	for to := range nbrs {
		ids = append(ids, to)
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees that adjacency[from] is initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]float64)
	}
}
