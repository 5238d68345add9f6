package node2vec_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/node2vec"
)

// TestOptions_Invalid verifies that bad hyperparameters fail fast at
// construction with ErrConfiguration.
func TestOptions_Invalid(t *testing.T) {
	g := cycle(t, 4)
	cases := []struct {
		name string
		opt  node2vec.Option
	}{
		{"p zero", node2vec.WithP(0)},
		{"p negative", node2vec.WithP(-1)},
		{"p NaN", node2vec.WithP(math.NaN())},
		{"p Inf", node2vec.WithP(math.Inf(1))},
		{"q zero", node2vec.WithQ(0)},
		{"q negative", node2vec.WithQ(-0.5)},
		{"cap one", node2vec.WithNumSampleNeighbors(1)},
		{"cap negative", node2vec.WithNumSampleNeighbors(-3)},
		{"workers zero", node2vec.WithWorkers(0)},
		{"batch zero", node2vec.WithBatchSize(0)},
		{"progress zero", node2vec.WithProgressEvery(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := node2vec.NewWalker(g, tc.opt)
			assert.ErrorIs(t, err, node2vec.ErrConfiguration)
			_, err = node2vec.Precompute(g, tc.opt)
			assert.ErrorIs(t, err, node2vec.ErrConfiguration)
		})
	}
}

// TestOptions_NilGraph verifies ErrGraphNil.
func TestOptions_NilGraph(t *testing.T) {
	_, err := node2vec.NewWalker(nil)
	assert.ErrorIs(t, err, node2vec.ErrGraphNil)
	_, err = node2vec.Precompute(nil)
	assert.ErrorIs(t, err, node2vec.ErrGraphNil)
}

// TestWalkArgs_Invalid verifies per-call walkLen / numEpochs validation.
func TestWalkArgs_Invalid(t *testing.T) {
	w, err := node2vec.NewWalker(cycle(t, 4))
	require.NoError(t, err)

	_, err = w.GenerateWalk("0", 0)
	assert.ErrorIs(t, err, node2vec.ErrConfiguration)
	_, err = w.Simulate(0, 5)
	assert.ErrorIs(t, err, node2vec.ErrConfiguration)
	_, err = w.Simulate(1, 0)
	assert.ErrorIs(t, err, node2vec.ErrConfiguration)

	err = w.SimulateParallel(context.Background(), 1, -1, func([]string) error { return nil })
	assert.ErrorIs(t, err, node2vec.ErrConfiguration)

	var errs []error
	for walk, err := range w.Walks(0, 3) {
		assert.Nil(t, walk)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], node2vec.ErrConfiguration)
}

// TestMode_Selection verifies the Unbiased/Biased variant choice.
func TestMode_Selection(t *testing.T) {
	g := cycle(t, 4)

	w, err := node2vec.NewWalker(g, node2vec.WithWeighted(false))
	require.NoError(t, err)
	assert.Equal(t, node2vec.ModeUnbiased, w.Mode())
	assert.Nil(t, w.Cache(), "vanilla mode builds no tables")

	w, err = node2vec.NewWalker(g) // weighted by default
	require.NoError(t, err)
	assert.Equal(t, node2vec.ModeBiased, w.Mode())
	assert.NotNil(t, w.Cache())

	w, err = node2vec.NewWalker(g, node2vec.WithWeighted(false), node2vec.WithP(2))
	require.NoError(t, err)
	assert.Equal(t, node2vec.ModeBiased, w.Mode())
	assert.Equal(t, "biased", w.Mode().String())
}

// TestOptions_Logger verifies records reach a caller-supplied logger.
func TestOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := node2vec.NewWalker(cycle(t, 5), node2vec.WithLogger(logger), node2vec.WithP(2))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "precompute started")
	assert.Contains(t, buf.String(), "transition cache ready")
}
