// SPDX-License-Identifier: MIT

// File: cache.go
// Role: TransitionCache construction (node tables + edge tables).
// Complexity:
//   - Time:   O(Σ_prev Σ_{cur∈N(prev)} |N(cur)|·log d) worst case, split over Workers.
//   - Memory: O(Σ_v |N(v)| + Σ_prev Σ_{cur∈N(prev)} |N(cur)|).
package node2vec

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvwalk/alias"
)

// TransitionCache holds the alias tables of one graph under one parameter set.
// It is immutable once Precompute returns and safe for concurrent reads.
type TransitionCache struct {
	snap   *snapshot
	params params

	sampled  [][]int32   // per-vertex neighbor list after the cap
	sweights [][]float64 // aligned with sampled; nil when unweighted

	nodeTables []*alias.Table   // nil for vertices without neighbors
	edgeTables [][]*alias.Table // edgeTables[prev][k] is the table of prev→sampled[prev][k]
	edgeCount  int
}

// Precompute builds a TransitionCache for g: one node table per vertex and one
// edge table per traversal prev→cur a walk can take.
//
// Work is partitioned by prev vertex across Options.Workers goroutines; every
// goroutine writes only its own pre-sized slots. Progress hooks fire every
// Options.ProgressEvery tables and at completion.
//
// Returns ErrGraphNil, ErrConfiguration, ErrDegenerateDistribution (wrapped
// with the offending vertex or edge) or the context error.
func Precompute(g Graph, opts ...Option) (*TransitionCache, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	snap, err := newSnapshot(g, o.Weighted)
	if err != nil {
		return nil, err
	}

	return precompute(snap, o)
}

func precompute(snap *snapshot, o Options) (*TransitionCache, error) {
	n := len(snap.ids)
	c := &TransitionCache{
		snap:       snap,
		params:     o.params(),
		nodeTables: make([]*alias.Table, n),
		edgeTables: make([][]*alias.Table, n),
	}
	c.sampled, c.sweights = sampledNeighbors(snap, o.NumSampleNeighbors)
	for v, l := range c.sampled {
		c.edgeTables[v] = make([]*alias.Table, len(l))
		c.edgeCount += len(l)
	}

	o.Logger.Debug("precompute started",
		"vertices", n, "edges", snap.edges, "directed", snap.directed,
		"edge_tables", c.edgeCount, "workers", o.Workers,
		"p", o.P, "q", o.Q, "weighted", o.Weighted, "sample_neighbors", o.NumSampleNeighbors)
	started := time.Now()

	nodes := newProgress(n, o.ProgressEvery, o.OnNodeTable)
	edges := newProgress(c.edgeCount, o.ProgressEvery, o.OnEdgeTable)

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	chunk := chunkSize(n, o.Workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			for v := lo; v < hi; v++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				prev := int32(v)
				t, err := c.buildNodeTable(prev)
				if err != nil {
					return err
				}
				c.nodeTables[v] = t
				nodes.add()

				for k, cur := range c.sampled[v] {
					t, err := c.buildEdgeTable(prev, cur)
					if err != nil {
						return err
					}
					c.edgeTables[v][k] = t
					edges.add()
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	o.Logger.Info("transition cache ready",
		"vertices", n, "edge_tables", c.edgeCount, "elapsed", time.Since(started))

	return c, nil
}

// buildNodeTable encodes w(v, next) over v's sampled neighbors.
func (c *TransitionCache) buildNodeTable(v int32) (*alias.Table, error) {
	nbrs := c.sampled[v]
	if len(nbrs) == 0 {
		return nil, nil
	}
	w := make([]float64, len(nbrs))
	for k := range nbrs {
		w[k] = c.weight(v, k)
	}
	t, err := alias.FromWeights(w)
	if err != nil {
		return nil, fmt.Errorf("node2vec: node table %q: %w", c.snap.ids[v], err)
	}
	return t, nil
}

// buildEdgeTable encodes the second-order bias over cur's sampled neighbors
// given the walk arrived from prev:
//
//	next == prev          → w / p
//	edge next→prev exists → w
//	otherwise             → w / q
func (c *TransitionCache) buildEdgeTable(prev, cur int32) (*alias.Table, error) {
	nbrs := c.sampled[cur]
	if len(nbrs) == 0 {
		return nil, nil
	}
	w := make([]float64, len(nbrs))
	for k, next := range nbrs {
		x := c.weight(cur, k)
		switch {
		case next == prev:
			x /= c.params.p
		case c.snap.hasEdge(next, prev):
		default:
			x /= c.params.q
		}
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("node2vec: edge table %q→%q: %w: weight of %q overflows",
				c.snap.ids[prev], c.snap.ids[cur], ErrDegenerateDistribution, c.snap.ids[next])
		}
		w[k] = x
	}
	t, err := alias.FromWeights(w)
	if err != nil {
		return nil, fmt.Errorf("node2vec: edge table %q→%q: %w", c.snap.ids[prev], c.snap.ids[cur], err)
	}
	return t, nil
}

func (c *TransitionCache) weight(v int32, k int) float64 {
	if c.sweights == nil {
		return 1.0
	}
	return c.sweights[v][k]
}

// edgeTable finds the table of prev→cur. ok is false when cur is not in
// prev's sampled neighbor list.
func (c *TransitionCache) edgeTable(prev, cur int32) (*alias.Table, bool) {
	k, ok := slices.BinarySearch(c.sampled[prev], cur)
	if !ok {
		return nil, false
	}
	return c.edgeTables[prev][k], true
}

// VertexCount returns the number of vertices covered by the cache.
func (c *TransitionCache) VertexCount() int { return len(c.snap.ids) }

// EdgeTableCount returns the number of traversals prev→cur with a table slot.
func (c *TransitionCache) EdgeTableCount() int { return c.edgeCount }

// Neighbors returns the (possibly subsampled) sorted neighbor list that table
// indices of id refer to.
func (c *TransitionCache) Neighbors(id string) ([]string, error) {
	v, err := c.snap.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.snap.names(c.sampled[v]), nil
}

// NodeTable returns the first-step table of id; nil for a vertex without neighbors.
func (c *TransitionCache) NodeTable(id string) (*alias.Table, error) {
	v, err := c.snap.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.nodeTables[v], nil
}

// EdgeTable returns the table used after moving prev→cur; nil when cur has no
// neighbors. ErrStaleCache if the traversal is not covered.
func (c *TransitionCache) EdgeTable(prev, cur string) (*alias.Table, error) {
	pv, err := c.snap.lookup(prev)
	if err != nil {
		return nil, err
	}
	cv, err := c.snap.lookup(cur)
	if err != nil {
		return nil, err
	}
	t, ok := c.edgeTable(pv, cv)
	if !ok {
		return nil, fmt.Errorf("%w: no edge table for %q→%q", ErrStaleCache, prev, cur)
	}
	return t, nil
}

// compatible reports whether c was built for g under o.
func (c *TransitionCache) compatible(g Graph, o Options) error {
	if c.snap.graph != g {
		return fmt.Errorf("%w: cache was built for another graph", ErrStaleCache)
	}
	if c.params != o.params() {
		return fmt.Errorf("%w: cache built with p=%v q=%v weighted=%v cap=%d",
			ErrStaleCache, c.params.p, c.params.q, c.params.weighted, c.params.sampleLimit)
	}
	return nil
}

// progress counts completed units and fires fn every `every` units and at total.
// Calls to fn are serialized and see a strictly increasing done, so the
// completion call is always the last one.
type progress struct {
	mu    sync.Mutex
	done  int
	total int
	every int
	fn    func(done, total int)
}

func newProgress(total, every int, fn func(int, int)) *progress {
	return &progress{total: total, every: every, fn: fn}
}

func (p *progress) add() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.done%p.every == 0 || p.done == p.total {
		p.fn(p.done, p.total)
	}
}

// chunkSize splits n items into roughly 4 chunks per worker.
func chunkSize(n, workers int) int {
	parts := workers * 4
	c := (n + parts - 1) / parts
	if c < 1 {
		c = 1
	}
	return c
}
