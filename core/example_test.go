package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("C", "A", 0)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	w, _ := g.Weight("A", "C")
	fmt.Println("Weight A-C:", w)

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// Weight A-C: 1
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleGraph_NeighborIDs shows the sorted neighbor order walkers rely on.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge("hub", "zeta", 0.5)
	_ = g.AddEdge("hub", "alpha", 2)
	_ = g.AddEdge("hub", "mu", 1)

	nbrs, _ := g.NeighborIDs("hub")
	fmt.Println(nbrs)

	// Output:
	// [alpha mu zeta]
}
