// Package lvwalk generates random-walk corpora for graph embeddings:
// node2vec's second-order biased walks and their first-order special case,
// DeepWalk.
//
// 🚀 What is lvwalk?
//
//	A thread-safe walk engine built on precomputed alias tables:
//		• Core primitives: weighted, directed or undirected in-memory graphs
//		• Alias tables: O(1) draws from any discrete distribution (Vose)
//		• Transition cache: one node table per vertex, one edge table per
//		  traversal prev→cur, built in parallel
//		• Walkers: unbiased (DeepWalk) and biased (node2vec p/q) modes
//		• Simulation: lazy epoch iterator, range-over-func view, worker pool
//		• Corpus sinks: text files, stdout, Redis lists
//
// ✨ Why choose lvwalk?
//
//   - Deterministic – every run is reproducible from one seed
//   - Bounded memory – neighbor caps for high-degree vertices
//   - Observable – progress hooks, slog records, Prometheus metrics in walkgen
//   - Interoperable – read adjacency/edge lists or wrap a gonum graph
//
// Packages:
//
//	alias/      - alias tables (Build, Normalize, Draw)
//	bfs/        - hop distances for walk locality checks
//	builder/    - deterministic graph fixtures (Cycle, Grid, Star, RandomSparse, …)
//	core/       - Graph, Edge types & thread-safe primitives
//	corpus/     - walk sinks (TextWriter, RedisSink) and the Write driver
//	gonumgraph/ - gonum graph adapter
//	graphio/    - adjacency-list and edge-list readers
//	node2vec/   - TransitionCache, Walker, Simulate, SimulateParallel
//	cmd/walkgen - command-line corpus generator
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╱ │
//	    C   D
//
// A walk arriving at B from A returns to A with weight 1/p, moves to C (a
// neighbor of A) with weight 1, and moves to D (farther from A) with weight 1/q.
//
//	go get github.com/katalvlaran/lvwalk
package lvwalk
