// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}".
//   • Emits every cross pair L_i → R_j (mirrored when directed).
//
// Walks on K_{n1,n2} alternate sides, and no neighbor of cur is ever adjacent
// to prev, so only the 1/p and 1/q branches of the bias apply.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
		}
		if err := addVertices(g, methodCompleteBipartite, left...); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, right...); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v, edgeWeight(g, cfg), true); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
