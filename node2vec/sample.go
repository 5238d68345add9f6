package node2vec

// subsampleIndices returns the positions kept when a neighbor list of length
// degree is capped to limit entries: floor(i*(degree-1)/(limit-1)) for
// i in [0, limit). The first and last neighbor are always kept.
//
// It returns nil when no subsampling applies (limit == 0 or degree ≤ limit).
// limit must be ≥ 2 when non-zero.
func subsampleIndices(degree, limit int) []int {
	if limit == 0 || degree <= limit {
		return nil
	}
	idx := make([]int, limit)
	for i := range idx {
		idx[i] = i * (degree - 1) / (limit - 1)
	}
	return idx
}

// sampledNeighbors applies the neighbor cap to every list of s.
// Lists within the cap are shared with the snapshot, not copied.
// weights is aligned with lists (nil when the snapshot is unweighted).
func sampledNeighbors(s *snapshot, limit int) (lists [][]int32, weights [][]float64) {
	lists = make([][]int32, len(s.nbrs))
	if s.weights != nil {
		weights = make([][]float64, len(s.nbrs))
	}
	for v, full := range s.nbrs {
		keep := subsampleIndices(len(full), limit)
		if keep == nil {
			lists[v] = full
			if weights != nil {
				weights[v] = s.weights[v]
			}
			continue
		}
		l := make([]int32, len(keep))
		for i, k := range keep {
			l[i] = full[k]
		}
		lists[v] = l
		if weights != nil {
			w := make([]float64, len(keep))
			for i, k := range keep {
				w[i] = s.weights[v][k]
			}
			weights[v] = w
		}
	}
	return lists, weights
}
