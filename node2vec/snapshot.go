package node2vec

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// snapshot is an interned, immutable view of a Graph.
//
// Vertex IDs are sorted and mapped to dense int32 indices, so ascending index
// order equals the graph's sorted-ID order and every neighbor list below is
// sorted by index. Once built, a snapshot is read without locks.
type snapshot struct {
	graph    Graph
	directed bool
	ids      []string         // index → ID (sorted)
	index    map[string]int32 // ID → index
	nbrs     [][]int32        // full neighbor lists, ascending
	weights  [][]float64      // weights[v][k] = w(v, nbrs[v][k]); nil when unweighted
	edges    int              // Σ len(nbrs[v])
}

// newSnapshot interns g. When weighted is false edge weights are not fetched
// and every edge counts as 1.0.
func newSnapshot(g Graph, weighted bool) (*snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	if !sort.StringsAreSorted(ids) {
		ids = slices.Clone(ids)
		sort.Strings(ids)
	}
	if len(ids) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d vertices exceed int32 indexing", ErrConfiguration, len(ids))
	}

	s := &snapshot{
		graph:    g,
		directed: g.Directed(),
		ids:      ids,
		index:    make(map[string]int32, len(ids)),
		nbrs:     make([][]int32, len(ids)),
	}
	if weighted {
		s.weights = make([][]float64, len(ids))
	}
	for i, id := range ids {
		s.index[id] = int32(i)
	}

	for v, id := range ids {
		names, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("node2vec: neighbors of %q: %w", id, err)
		}
		list := make([]int32, len(names))
		for k, name := range names {
			u, ok := s.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: neighbor %q of %q is not a graph vertex", ErrStaleCache, name, id)
			}
			list[k] = u
		}
		slices.Sort(list)
		list = slices.Compact(list)
		s.nbrs[v] = list
		s.edges += len(list)

		if !weighted {
			continue
		}
		ws := make([]float64, len(list))
		for k, u := range list {
			w, ok := g.Weight(id, ids[u])
			if !ok {
				return nil, fmt.Errorf("%w: no weight for edge %q→%q", ErrStaleCache, id, ids[u])
			}
			ws[k] = w
		}
		s.weights[v] = ws
	}

	return s, nil
}

// hasEdge reports whether from→to exists, by binary search in from's list.
func (s *snapshot) hasEdge(from, to int32) bool {
	_, ok := slices.BinarySearch(s.nbrs[from], to)
	return ok
}

// lookup resolves an external ID to its index.
func (s *snapshot) lookup(id string) (int32, error) {
	v, ok := s.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: unknown vertex %q", ErrStaleCache, id)
	}
	return v, nil
}

// names converts an index walk into vertex IDs.
func (s *snapshot) names(walk []int32) []string {
	out := make([]string, len(walk))
	for i, v := range walk {
		out[i] = s.ids[v]
	}
	return out
}
