// Package bfs computes unweighted hop distances by breadth-first search.
//
// It works over anything that lists out-neighbors (core.Graph,
// gonumgraph.Graph, any node2vec.Graph), ignoring edge weights. Walk tooling
// uses it to measure how far a walk strays from its start vertex, which is
// the locality that node2vec's q parameter trades off:
//
//	res, _ := bfs.BFS(g, start)
//	hops := res.Depth[walk[len(walk)-1]]
//
// Options:
//
//	WithContext         cancellation, checked once per dequeued vertex
//	WithMaxDepth        stop expanding past a depth
//	WithFilterNeighbor  skip edges curr→neighbor
//	WithOnVisit         callback per visited vertex; an error aborts
package bfs
