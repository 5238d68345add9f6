// Package graphio reads text graph formats into a *core.Graph.
//
// Two line-oriented formats are supported:
//
//	adjlist   "node nbr1 nbr2 ..."  one source vertex per line
//	edgelist  "u v [w]"             one edge per line, w required when weighted
//
// Fields are separated by whitespace. Text after the comment prefix ("#" by
// default) is ignored, blank lines are skipped. A vertex that only appears as
// the first field of an adjlist line is still added to the graph.
//
// Repeated edges are not an error: in adjlist input they are ignored, in
// edgelist input the last weight wins. Self-loops are accepted.
//
// Errors:
//
//	ErrNilReader     - the reader is nil.
//	ErrSyntax        - a malformed line (wrapped with the line number).
//	ErrUnknownFormat - ParseFormat got an unsupported name.
package graphio
