// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Sparse random graphs leave some vertices isolated, which is how walk tests
// get zero-degree vertices inside a larger graph.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
// Determinism: stable trial order (i asc, j asc) for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodRandomSparse, ids...); err != nil {
			return err
		}

		// p ∈ {0,1} never consults the rng.
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include() {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j], edgeWeight(g, cfg), false); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
