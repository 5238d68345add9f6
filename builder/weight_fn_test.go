// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvwalk/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on parameters that could yield non-positive weights.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnValues checks ranges and nil-rng fallbacks.
func TestWeightFnValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))))

	rng := rand.New(rand.NewSource(3))
	uni := builder.UniformWeightFn(2, 3)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 1000; i++ {
		w := uni(rng)
		assert.True(t, w >= 2 && w < 3, "uniform out of range: %v", w)
		assert.Greater(t, exp(rng), 0.0)
	}
}
