// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim cycle C_{n-1} plus hub CenterVertexID.
//   • Rim built by Cycle(n-1); spokes Center → rim[i] (mirrored when directed).
//
// Every rim edge closes a triangle with the hub, so walks on a wheel exercise
// the "neighbor shared with prev" branch of the second-order bias.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertices(g, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for _, rim := range indexIDs(cfg, 0, n-1) {
			if err := addEdge(g, methodWheel, CenterVertexID, rim, edgeWeight(g, cfg), true); err != nil {
				return err
			}
		}
		return nil
	}
}
