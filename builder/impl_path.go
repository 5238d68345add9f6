// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges (i-1)→i for i=1..n-1; directed paths end in a sink, which is
//     the canonical dead end for walk tests.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodPath, ids...); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i], edgeWeight(g, cfg), false); err != nil {
				return err
			}
		}
		return nil
	}
}
