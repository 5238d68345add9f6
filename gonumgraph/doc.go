// Package gonumgraph adapts a gonum graph (gonum.org/v1/gonum/graph) to the
// read-only contract walkers consume (node2vec.Graph).
//
// Node IDs are rendered to strings with a Labeler (decimal int64 by default).
// The node set and labels are captured by New; edges and weights are read
// through to the wrapped graph on every call, so the wrapped graph must not
// be mutated while walkers are built or running.
//
// Weights come from graph.Weighted when the wrapped graph implements it and
// default to 1.0 otherwise. Directedness is detected through graph.Directed.
package gonumgraph
