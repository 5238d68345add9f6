// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits spokes Center → leaf[i];
//     directed graphs also get leaf[i] → Center.
//
// A star is the smallest hub fixture: its center has degree n-1, which is
// what neighbor subsampling caps.
//
// Complexity: O(n) vertices + O(n-1) edges (O(2n-2) directed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		leaves := indexIDs(cfg, 1, n)
		if err := addVertices(g, methodStar, leaves...); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addEdge(g, methodStar, CenterVertexID, leaf, edgeWeight(g, cfg), true); err != nil {
				return err
			}
		}
		return nil
	}
}
