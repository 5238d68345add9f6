// Package core provides the thread-safe in-memory weighted graph that the
// walk engine samples from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Constant-time edge queries via nested maps:
//     adjacency[from][to] = weight
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() all return sorted results.
//     Alias-table bins are positional, so neighbor order must be identical on every access.
//   - O(1) HasEdge/Weight lookups, which keeps the second-order transition
//     setup in node2vec at O(deg) per directed edge.
//   - Safe for concurrent readers once built (precompute and walk workers share it).
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only “from→to” entries.
//	    Undirected graphs mirror edges in adjacency[to][from].
//
//	– WithWeighted()
//	    Permits positive finite weights; otherwise AddEdge(weight≠0) → ErrBadWeight
//	    and every edge reports the unit weight 1.0.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(V) worst case (in-edges of directed graphs)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) error // O(1)
//	RemoveEdge(from, to string) error               // O(1)
//	HasEdge(from, to string) bool                   // O(1)
//	Weight(from, to string) (float64, bool)         // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []Edge                           // O(E·log E)
//	OutDegree(id string) (int, error)        // O(1)
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//	Stats() *GraphStats                      // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or non-positive/non-finite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
