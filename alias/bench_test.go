package alias_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvwalk/alias"
)

// benchWeights returns k skewed positive weights.
func benchWeights(k int) []float64 {
	w := make([]float64, k)
	for i := range w {
		w[i] = float64(i%7 + 1)
	}
	return w
}

// BenchmarkFromWeights measures O(K) construction on a hub-sized vector.
func BenchmarkFromWeights(b *testing.B) {
	w := benchWeights(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alias.FromWeights(w); err != nil {
			b.Fatalf("FromWeights failed: %v", err)
		}
	}
}

// BenchmarkDraw measures the O(1) draw path.
func BenchmarkDraw(b *testing.B) {
	tbl, err := alias.FromWeights(benchWeights(1024))
	if err != nil {
		b.Fatalf("FromWeights failed: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.Draw(rng)
	}
}
