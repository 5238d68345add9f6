// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// edgeWeight picks the weight for the next emitted edge: cfg.weightFn on
// weighted graphs, 0 (the core's "unweighted" marker) otherwise.
func edgeWeight(g *core.Graph, cfg builderConfig) float64 {
	if !g.Weighted() {
		return 0
	}
	return cfg.weightFn(cfg.rng)
}

// addEdge emits u→v and, when mirror is set on a directed graph, v→u with the
// same weight.
func addEdge(g *core.Graph, method, u, v string, w float64, mirror bool) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}
	return nil
}

// addVertices inserts ids in order.
func addVertices(g *core.Graph, method string, ids ...string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

// indexIDs renders cfg.idFn over [from, to).
func indexIDs(cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, cfg.idFn(i))
	}
	return ids
}
