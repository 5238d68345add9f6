// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
)

// AddEdge creates a new edge from→to.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Store adjacency[from][to]; mirror to adjacency[to][from] for undirected graphs.
//
// Weight policy:
//   - Unweighted graphs accept only weight==0 and store UnitWeight.
//   - Weighted graphs accept only finite weights > 0.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.checkWeight(weight); err != nil {
		return err
	}
	if from == to && !g.Looped() {
		return ErrLoopNotAllowed
	}
	if !g.weighted {
		weight = UnitWeight
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return ErrMultiEdgeNotAllowed
	}

	ensureAdjacency(g, from)
	g.adjacency[from][to] = weight
	if !g.directed && from != to {
		ensureAdjacency(g, to)
		g.adjacency[to][from] = weight
	}
	g.edgeCount++

	return nil
}

// checkWeight enforces the weight policy. Flags are immutable, so no lock is needed
// beyond the one taken by Weighted().
func (g *Graph) checkWeight(weight float64) error {
	if !g.Weighted() {
		if weight != 0 {
			return ErrBadWeight
		}
		return nil
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return ErrBadWeight
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror in undirected graphs).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	if !g.directed {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// HasEdge(a,b) == HasEdge(b,a).
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of edge from→to and whether the edge exists.
// Unweighted graphs always report UnitWeight for existing edges.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns a snapshot of all edges sorted by (From, To) ascending.
// Undirected edges appear once, with From <= To.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	directed := g.Directed()

	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			if !directed && to < from {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E| (undirected edges counted once).
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
