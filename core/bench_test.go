// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvwalk/core"
)

// BenchmarkAddEdge_Unweighted measures performance of adding edges
// in an unweighted, undirected graph (default configuration).
func BenchmarkAddEdge_Unweighted(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i), 0)
	}
}

// BenchmarkAddEdge_Weighted measures performance of adding weighted edges.
func BenchmarkAddEdge_Weighted(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i+1))
	}
}

// BenchmarkNeighborIDs measures sorted neighbor enumeration on a hub vertex.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Hub", fmt.Sprintf("N%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("Hub")
	}
}

// BenchmarkHasEdge measures the O(1) adjacency probe used by edge-table setup.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Hub", fmt.Sprintf("N%d", i), 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(fmt.Sprintf("N%d", i%1000), "Hub")
	}
}
