// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1 (one direction only
//     on directed graphs, so a directed cycle is a one-way ring).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodCycle, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n], edgeWeight(g, cfg), false); err != nil {
				return err
			}
		}
		return nil
	}
}
