// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the immutable configuration flags.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight and every
// edge reports UnitWeight.
//
// Complexity: O(1). Takes muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether edges are one-way.
//
// Complexity: O(1). Takes muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
//
// Complexity: O(1). Takes muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count, then release.
//
// Both locks are never held at once, so Stats cannot deadlock with mutators.
//
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	g.muEdgeAdj.RUnlock()

	return &stats
}
