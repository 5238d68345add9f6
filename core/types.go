// Package core defines the central Graph and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be built from several
// goroutines and read concurrently by walkers afterwards.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight violates the graph's weight policy.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that the graph's weight policy rejects.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// UnitWeight is the weight reported for every edge of an unweighted graph.
const UnitWeight = 1.0

// Edge represents a connection between two vertices.
//
// For undirected graphs Edges() reports each edge once with From <= To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge weight (UnitWeight in unweighted graphs).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows positive edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog; muEdgeAdj protects adjacency and edgeCount.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags (immutable after NewGraph)
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage
	vertices  map[string]struct{}
	edgeCount int

	// adjacency[from][to] = weight; undirected edges are mirrored.
	adjacency map[string]map[string]float64
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
