package node2vec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
	"github.com/katalvlaran/lvwalk/core"
)

// newGraph builds a core.Graph from edges. Weights are ignored (sent as 0)
// when weighted is false.
func newGraph(tb testing.TB, directed, weighted bool, edges ...core.Edge) *core.Graph {
	tb.Helper()
	opts := []core.GraphOption{core.WithDirected(directed)}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		w := e.Weight
		if !weighted {
			w = 0
		}
		require.NoError(tb, g.AddEdge(e.From, e.To, w))
	}
	return g
}

// unit is shorthand for an edge of weight 1.
func unit(from, to string) core.Edge { return core.Edge{From: from, To: to, Weight: 1} }

// cycle builds an undirected unweighted cycle "0".."n-1".
func cycle(tb testing.TB, n int) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	require.NoError(tb, err)
	return g
}

// diamond is A-B, B-C, B-D, A-C: from A→B, C is a shared neighbor of A and
// B while D is strictly farther away.
func diamond(tb testing.TB) *core.Graph {
	tb.Helper()
	return newGraph(tb, false, false, unit("A", "B"), unit("B", "C"), unit("B", "D"), unit("A", "C"))
}

func key(walk []string) string { return strings.Join(walk, " ") }
