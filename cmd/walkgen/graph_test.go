package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticGraph(t *testing.T) {
	cases := []struct {
		desc     string
		vertices int
		edges    int
	}{
		{"cycle:6", 6, 6},
		{"path:4", 4, 3},
		{"star:5", 5, 4},
		{"wheel:5", 5, 8},
		{"complete:4", 4, 6},
		{"grid:2x3", 6, 7},
		{"bipartite:2x3", 5, 6},
		{"random:10:1", 10, 45},
		{"random:10:0", 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			g, err := syntheticGraph(tc.desc, false, false, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestSyntheticGraph_Weighted(t *testing.T) {
	g, err := syntheticGraph("cycle:8", false, true, 42)
	require.NoError(t, err)
	require.True(t, g.Weighted())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, minSyntheticWeight)
		assert.Less(t, e.Weight, maxSyntheticWeight)
	}
}

func TestSyntheticGraph_Errors(t *testing.T) {
	for _, desc := range []string{"cycle", "cycle:x", "grid:3", "grid:3xy", "random:10", "random:10:2", "torus:3", "cycle:2"} {
		_, err := syntheticGraph(desc, false, false, 1)
		assert.Error(t, err, desc)
	}
}

func TestLoadGraph_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.adj")
	require.NoError(t, os.WriteFile(path, []byte("a b c\nb c\n"), 0o600))

	cfg := DefaultConfig()
	cfg.GraphPath, cfg.Format, cfg.Directed = path, "adjlist", true
	g, err := loadGraph(&cfg)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
}
