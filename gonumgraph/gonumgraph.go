package gonumgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

var (
	// ErrNilGraph is returned when New is given a nil graph.
	ErrNilGraph = errors.New("gonumgraph: graph is nil")

	// ErrDuplicateLabel is returned when two nodes render to the same label.
	ErrDuplicateLabel = errors.New("gonumgraph: duplicate node label")

	// ErrVertexNotFound is returned for a label that names no node.
	ErrVertexNotFound = errors.New("gonumgraph: vertex not found")
)

// Labeler renders a gonum node as a vertex ID.
type Labeler func(n graph.Node) string

// DecimalLabel renders the node ID in base 10.
func DecimalLabel(n graph.Node) string { return strconv.FormatInt(n.ID(), 10) }

// Option configures New.
type Option func(*Graph)

// WithLabeler overrides DecimalLabel.
func WithLabeler(fn Labeler) Option {
	return func(g *Graph) {
		if fn != nil {
			g.label = fn
		}
	}
}

// Graph is a string-ID view over a gonum graph.
type Graph struct {
	g        graph.Graph
	weighted graph.Weighted // nil when g carries no weights
	directed graph.Directed // nil when g is undirected
	label    Labeler

	names []string         // sorted labels
	ids   map[string]int64 // label → node ID
	byID  map[int64]string // node ID → label
}

// New captures g's node set and returns the adapter.
func New(g graph.Graph, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	a := &Graph{g: g, label: DecimalLabel}
	for _, opt := range opts {
		opt(a)
	}
	a.weighted, _ = g.(graph.Weighted)
	a.directed, _ = g.(graph.Directed)

	nodes := graph.NodesOf(g.Nodes())
	a.names = make([]string, 0, len(nodes))
	a.ids = make(map[string]int64, len(nodes))
	a.byID = make(map[int64]string, len(nodes))
	for _, n := range nodes {
		name := a.label(n)
		if prev, dup := a.ids[name]; dup {
			return nil, fmt.Errorf("%w: %q (nodes %d and %d)", ErrDuplicateLabel, name, prev, n.ID())
		}
		a.ids[name] = n.ID()
		a.byID[n.ID()] = name
		a.names = append(a.names, name)
	}
	sort.Strings(a.names)

	return a, nil
}

// Vertices returns all labels in sorted order.
func (a *Graph) Vertices() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Directed reports whether the wrapped graph implements graph.Directed.
func (a *Graph) Directed() bool { return a.directed != nil }

// NeighborIDs returns the sorted labels reachable from id in one step.
func (a *Graph) NeighborIDs(id string) ([]string, error) {
	nid, ok := a.ids[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	// From may report an unknown (negative) Len; NodesOf handles that.
	nbrs := graph.NodesOf(a.g.From(nid))
	out := make([]string, 0, len(nbrs))
	for _, n := range nbrs {
		out = append(out, a.byID[n.ID()])
	}
	sort.Strings(out)
	return out, nil
}

// HasEdge reports whether from→to exists (either direction when undirected).
func (a *Graph) HasEdge(from, to string) bool {
	x, ok := a.ids[from]
	if !ok {
		return false
	}
	y, ok := a.ids[to]
	if !ok {
		return false
	}
	if a.directed != nil {
		return a.directed.HasEdgeFromTo(x, y)
	}
	return a.g.HasEdgeBetween(x, y)
}

// Weight returns the weight of from→to; 1.0 for unweighted graphs.
// ok is false when the edge does not exist.
func (a *Graph) Weight(from, to string) (float64, bool) {
	if !a.HasEdge(from, to) {
		return 0, false
	}
	if a.weighted == nil {
		return 1.0, true
	}
	return a.weighted.Weight(a.ids[from], a.ids[to])
}
