package node2vec_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
	"github.com/katalvlaran/lvwalk/node2vec"
)

// TestPrecompute_TableCounts verifies one edge table slot per traversal.
func TestPrecompute_TableCounts(t *testing.T) {
	c, err := node2vec.Precompute(cycle(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 8, c.EdgeTableCount(), "both directions of every undirected edge")

	for _, e := range [][2]string{{"0", "1"}, {"1", "0"}, {"3", "0"}, {"0", "3"}} {
		tbl, err := c.EdgeTable(e[0], e[1])
		require.NoError(t, err)
		assert.Equal(t, 2, tbl.Len())
	}
	_, err = c.EdgeTable("0", "2")
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "0-2 is not an edge")

	// Directed path 0→1→2: the sink has no tables.
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	require.NoError(t, err)
	c, err = node2vec.Precompute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, c.EdgeTableCount())
	nt, err := c.NodeTable("2")
	require.NoError(t, err)
	assert.Nil(t, nt)
	et, err := c.EdgeTable("1", "2")
	require.NoError(t, err)
	assert.Nil(t, et)
	_, err = c.EdgeTable("1", "0")
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "reverse arc does not exist")
}

// TestPrecompute_SecondOrderBias checks the three bias branches exactly.
func TestPrecompute_SecondOrderBias(t *testing.T) {
	c, err := node2vec.Precompute(diamond(t), node2vec.WithP(2), node2vec.WithQ(0.5), node2vec.WithWeighted(false))
	require.NoError(t, err)

	nbrs, err := c.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, nbrs)

	// A→B: A is prev (1/p), C touches A (1), D is farther (1/q).
	tbl, err := c.EdgeTable("A", "B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 7, 2.0 / 7, 4.0 / 7}, tbl.Probabilities(), 1e-12)

	// C→B: A touches C (1), C is prev (1/p), D is farther (1/q).
	tbl, err = c.EdgeTable("C", "B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0 / 7, 1.0 / 7, 4.0 / 7}, tbl.Probabilities(), 1e-12)

	// The first step ignores p and q.
	nt, err := c.NodeTable("B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, nt.Probabilities(), 1e-12)
}

// TestPrecompute_Weights verifies weight-proportional tables and the
// unweighted override.
func TestPrecompute_Weights(t *testing.T) {
	g := newGraph(t, false, true,
		core.Edge{From: "A", To: "B", Weight: 1},
		core.Edge{From: "B", To: "C", Weight: 3},
	)

	c, err := node2vec.Precompute(g)
	require.NoError(t, err)
	nt, err := c.NodeTable("B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, nt.Probabilities(), 1e-12)

	c, err = node2vec.Precompute(g, node2vec.WithWeighted(false), node2vec.WithP(2))
	require.NoError(t, err)
	nt, err = c.NodeTable("B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, nt.Probabilities(), 1e-12)
}

// TestPrecompute_Degenerate verifies that a distribution collapsing to zero
// (or overflowing) is reported instead of producing NaNs.
func TestPrecompute_Degenerate(t *testing.T) {
	tiny := 5e-324
	g := newGraph(t, false, true,
		core.Edge{From: "A", To: "B", Weight: tiny},
		core.Edge{From: "B", To: "C", Weight: tiny},
	)
	_, err := node2vec.Precompute(g, node2vec.WithP(4), node2vec.WithQ(4))
	assert.ErrorIs(t, err, node2vec.ErrDegenerateDistribution, "underflow to zero")

	path := newGraph(t, false, false, unit("A", "B"), unit("B", "C"))
	_, err = node2vec.NewWalker(path, node2vec.WithWeighted(false), node2vec.WithQ(1e-310))
	assert.ErrorIs(t, err, node2vec.ErrDegenerateDistribution, "overflow of w/q")
}

// TestPrecompute_Subsample verifies the neighbor cap on a hub.
func TestPrecompute_Subsample(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPaddedIDs("n", 2)}, builder.Star(11))
	require.NoError(t, err)

	c, err := node2vec.Precompute(g, node2vec.WithNumSampleNeighbors(5))
	require.NoError(t, err)

	hub, err := c.Neighbors(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, []string{"n01", "n03", "n05", "n07", "n10"}, hub, "positions 0,2,4,6,9")

	nt, err := c.NodeTable(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 5, nt.Len())

	// Leaves keep their single neighbor; the hub's edge tables use the cap.
	et, err := c.EdgeTable("n02", builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 5, et.Len())
	_, err = c.EdgeTable(builder.CenterVertexID, "n02")
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "n02 was not sampled")
	assert.Equal(t, 5+10, c.EdgeTableCount())

	// Walks leaving the hub only ever reach sampled leaves.
	w, err := node2vec.NewWalkerWithCache(g, c, node2vec.WithNumSampleNeighbors(5))
	require.NoError(t, err)
	allowed := map[string]bool{"n01": true, "n03": true, "n05": true, "n07": true, "n10": true}
	for i := 0; i < 500; i++ {
		walk, err := w.GenerateWalk("n02", 6)
		require.NoError(t, err)
		require.Len(t, walk, 6)
		for j := 2; j < len(walk); j += 2 {
			assert.True(t, allowed[walk[j]], "walk %v reached unsampled leaf", walk)
		}
	}
}

// TestPrecompute_RoundTrip draws from every edge table and checks the
// indices against the neighbor list they refer to.
func TestPrecompute_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithExponentialWeight(1)},
		builder.RandomSparse(40, 0.15),
	)
	require.NoError(t, err)

	c, err := node2vec.Precompute(g, node2vec.WithP(0.5), node2vec.WithQ(2), node2vec.WithNumSampleNeighbors(4))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	for _, prev := range g.Vertices() {
		curs, err := c.Neighbors(prev)
		require.NoError(t, err)
		for _, cur := range curs {
			tbl, err := c.EdgeTable(prev, cur)
			require.NoError(t, err)
			next, err := c.Neighbors(cur)
			require.NoError(t, err)
			if len(next) == 0 {
				assert.Nil(t, tbl)
				continue
			}
			require.Equal(t, len(next), tbl.Len())
			for i := 0; i < 200; i++ {
				k := tbl.Draw(rng)
				require.True(t, k >= 0 && k < len(next), "index %d out of [0,%d)", k, len(next))
			}
		}
	}
}

// TestPrecompute_Hooks verifies progress cadence and the completion call.
func TestPrecompute_Hooks(t *testing.T) {
	var (
		mu           sync.Mutex
		nodes, edges [][2]int
	)
	_, err := node2vec.Precompute(cycle(t, 10),
		node2vec.WithWorkers(1),
		node2vec.WithProgressEvery(3),
		node2vec.WithOnNodeTable(func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			nodes = append(nodes, [2]int{done, total})
		}),
		node2vec.WithOnEdgeTable(func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			edges = append(edges, [2]int{done, total})
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{3, 10}, {6, 10}, {9, 10}, {10, 10}}, nodes)
	require.NotEmpty(t, edges)
	assert.Equal(t, [2]int{20, 20}, edges[len(edges)-1])
	assert.Len(t, edges, 20/3+1)
}

// TestPrecompute_HooksSerialized runs many workers with an unguarded hook:
// calls must not overlap and the completion call must come last.
func TestPrecompute_HooksSerialized(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(12, 12))
	require.NoError(t, err)

	var nodes, edges []int
	var busy int
	_, err = node2vec.Precompute(g,
		node2vec.WithWorkers(8),
		node2vec.WithProgressEvery(1),
		node2vec.WithOnNodeTable(func(done, total int) {
			busy++
			nodes = append(nodes, done)
			busy--
		}),
		node2vec.WithOnEdgeTable(func(done, total int) {
			edges = append(edges, done)
		}),
	)
	require.NoError(t, err)
	assert.Zero(t, busy)

	require.Len(t, nodes, 144)
	for i, d := range nodes {
		assert.Equal(t, i+1, d)
	}
	require.NotEmpty(t, edges)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1], edges[i])
	}
	assert.Equal(t, 2*(2*12*11), edges[len(edges)-1])
}

// TestPrecompute_Canceled verifies context cancellation.
func TestPrecompute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := node2vec.Precompute(cycle(t, 50), node2vec.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestNewWalkerWithCache verifies cache reuse and stale detection.
func TestNewWalkerWithCache(t *testing.T) {
	g := cycle(t, 6)
	c, err := node2vec.Precompute(g, node2vec.WithP(2))
	require.NoError(t, err)

	w, err := node2vec.NewWalkerWithCache(g, c, node2vec.WithP(2), node2vec.WithSeed(3))
	require.NoError(t, err)
	assert.Same(t, c, w.Cache())
	assert.Equal(t, node2vec.ModeBiased, w.Mode())

	_, err = node2vec.NewWalkerWithCache(cycle(t, 6), c, node2vec.WithP(2))
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "another graph instance")

	_, err = node2vec.NewWalkerWithCache(g, c, node2vec.WithP(3))
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "other p")

	_, err = node2vec.NewWalkerWithCache(g, c, node2vec.WithP(2), node2vec.WithNumSampleNeighbors(2))
	assert.ErrorIs(t, err, node2vec.ErrStaleCache, "other cap")

	_, err = node2vec.NewWalkerWithCache(g, nil)
	assert.ErrorIs(t, err, node2vec.ErrStaleCache)

	_, err = c.NodeTable("nope")
	assert.ErrorIs(t, err, node2vec.ErrStaleCache)
}
