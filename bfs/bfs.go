package bfs

import (
	"fmt"
)

type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from start.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound (when g
// cannot list start's neighbors), ErrNeighbors, the context error or the
// OnVisit error.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g Neighborer, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	first, err := g.NeighborIDs(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrStartVertexNotFound, start, err)
	}

	res := &Result{
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	queue := []queueItem{{id: start}}
	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item := queue[head]
		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}

		nbrs := first
		if head > 0 {
			if nbrs, err = g.NeighborIDs(item.id); err != nil {
				return res, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
			}
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen || !o.FilterNeighbor(item.id, nbr) {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}
