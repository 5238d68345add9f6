// Package node2vec generates biased second-order random walks over a weighted
// graph, the sampling half of a node2vec / DeepWalk embedding pipeline.
//
// 🚀 What it does
//
//	Graph ──► Precompute ──► *TransitionCache ──► Walker ──► walks (one []string each)
//
// A TransitionCache holds one alias table per vertex (the first step of a walk,
// where there is no previous vertex) and one alias table per traversable
// directed edge prev→cur (every later step). The edge table encodes the
// node2vec bias over cur's sorted neighbors:
//
//	next == prev                 w(cur,next) / p   (return)
//	edge next→prev exists        w(cur,next)       (stay close, BFS-like)
//	otherwise                    w(cur,next) / q   (move outward, DFS-like)
//
// With p == 1, q == 1 and an unweighted walk ("vanilla DeepWalk") no tables
// are built at all: the Walker runs in ModeUnbiased and draws each step
// uniformly among the current vertex's neighbors.
//
// Walk emission:
//
//   - GenerateWalk(start, walkLen): one walk; shorter than walkLen only if a
//     vertex without neighbors is reached.
//   - Simulate(numEpochs, walkLen): a lazy, pull-based WalkIterator. Each epoch
//     shuffles all vertices and emits one walk per vertex. Stop pulling to cancel.
//   - Walks(numEpochs, walkLen): the same sequence as an iter.Seq2.
//   - SimulateParallel(ctx, numEpochs, walkLen, emit): worker-pool variant that
//     still emits in per-epoch permutation order.
//
// Determinism:
//
//	All randomness flows from WithSeed (0 ⇒ default seed 1). Vertex IDs are
//	interned in sorted order, so neighbor positions (and therefore alias bins)
//	are identical on every access.
//
// Concurrency:
//
//	The cache and the graph snapshot are immutable after construction and are
//	read by many goroutines without locks. Precompute fills pre-sized slices,
//	one writer per slot. Progress hooks may be invoked from several goroutines.
//
// Errors:
//
//	ErrGraphNil               – nil graph.
//	ErrConfiguration          – p/q ≤ 0, walkLen < 1, numEpochs < 1, sample cap < 2, …
//	ErrDegenerateDistribution – a transition distribution sums to zero (e.g. 1/q underflow).
//	ErrStaleCache             – cache used with another graph/parameters, or unknown vertex/edge.
//
// Reference: A. Grover, J. Leskovec, "node2vec: Scalable Feature Learning for
// Networks", KDD 2016.
package node2vec
