package node2vec

import (
	"fmt"
	"math/rand"
	"sync"
)

// stepper draws the next vertex of a walk. ok is false at a dead end.
type stepper interface {
	first(cur int32, rng *rand.Rand) (next int32, ok bool)
	next(prev, cur int32, rng *rand.Rand) (next int32, ok bool, err error)
}

// unbiased: uniform over the full neighbor list, no tables.
type unbiased struct{ snap *snapshot }

func (u unbiased) first(cur int32, rng *rand.Rand) (int32, bool) {
	nb := u.snap.nbrs[cur]
	if len(nb) == 0 {
		return 0, false
	}
	return nb[rng.Intn(len(nb))], true
}

func (u unbiased) next(_, cur int32, rng *rand.Rand) (int32, bool, error) {
	v, ok := u.first(cur, rng)
	return v, ok, nil
}

// biased: node table for the first step, edge table afterwards.
type biased struct{ cache *TransitionCache }

func (b biased) first(cur int32, rng *rand.Rand) (int32, bool) {
	t := b.cache.nodeTables[cur]
	if t == nil {
		return 0, false
	}
	return b.cache.sampled[cur][t.Draw(rng)], true
}

func (b biased) next(prev, cur int32, rng *rand.Rand) (int32, bool, error) {
	t, ok := b.cache.edgeTable(prev, cur)
	if !ok {
		return 0, false, fmt.Errorf("%w: no edge table for %q→%q",
			ErrStaleCache, b.cache.snap.ids[prev], b.cache.snap.ids[cur])
	}
	if t == nil {
		return 0, false, nil
	}
	return b.cache.sampled[cur][t.Draw(rng)], true, nil
}

// Walker generates random walks over one graph snapshot.
//
// The sampling variant (ModeUnbiased or ModeBiased) is fixed at construction.
// GenerateWalk and Simulate may be called from several goroutines; each
// iterator owns its random stream.
type Walker struct {
	opts  Options
	mode  Mode
	snap  *snapshot
	cache *TransitionCache // nil in ModeUnbiased
	step  stepper

	mu      sync.Mutex // guards rng and streams
	rng     *rand.Rand
	streams uint64
}

// NewWalker snapshots g and, unless the options describe vanilla DeepWalk
// (p == 1, q == 1, unweighted), precomputes the TransitionCache.
func NewWalker(g Graph, opts ...Option) (*Walker, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	snap, err := newSnapshot(g, o.Weighted)
	if err != nil {
		return nil, err
	}
	if o.vanilla() {
		o.Logger.Debug("vanilla walk mode, no transition tables",
			"vertices", len(snap.ids), "edges", snap.edges, "directed", snap.directed)
		return newWalker(o, snap, nil), nil
	}
	cache, err := precompute(snap, o)
	if err != nil {
		return nil, err
	}

	return newWalker(o, snap, cache), nil
}

// NewWalkerWithCache reuses a cache from Precompute. g must be the same graph
// value the cache was built from, and opts must carry the same p, q, weighted
// and neighbor cap; otherwise ErrStaleCache.
func NewWalkerWithCache(g Graph, cache *TransitionCache, opts ...Option) (*Walker, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if cache == nil {
		return nil, fmt.Errorf("%w: nil cache", ErrStaleCache)
	}
	if err = cache.compatible(g, o); err != nil {
		return nil, err
	}

	return newWalker(o, cache.snap, cache), nil
}

func newWalker(o Options, snap *snapshot, cache *TransitionCache) *Walker {
	w := &Walker{
		opts:  o,
		snap:  snap,
		cache: cache,
		rng:   rngFromSeed(o.Seed),
	}
	if cache == nil {
		w.mode, w.step = ModeUnbiased, unbiased{snap: snap}
	} else {
		w.mode, w.step = ModeBiased, biased{cache: cache}
	}
	return w
}

// Mode reports the sampling variant chosen at construction.
func (w *Walker) Mode() Mode { return w.mode }

// Cache returns the transition cache, nil in ModeUnbiased.
func (w *Walker) Cache() *TransitionCache { return w.cache }

// Vertices returns the snapshot's vertex IDs in sorted order.
func (w *Walker) Vertices() []string {
	out := make([]string, len(w.snap.ids))
	copy(out, w.snap.ids)
	return out
}

// GenerateWalk returns one walk starting at start with at most walkLen
// vertices. The walk is shorter only if a vertex without neighbors is reached.
func (w *Walker) GenerateWalk(start string, walkLen int) ([]string, error) {
	if walkLen < 1 {
		return nil, fmt.Errorf("%w: walkLen must be ≥ 1 (%d)", ErrConfiguration, walkLen)
	}
	v, err := w.snap.lookup(start)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	walk, err := w.walk(v, walkLen, w.rng, nil)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return w.snap.names(walk), nil
}

// walk appends a walk from start into buf[:0] and returns it.
func (w *Walker) walk(start int32, walkLen int, rng *rand.Rand, buf []int32) ([]int32, error) {
	buf = append(buf[:0], start)
	for len(buf) < walkLen {
		cur := buf[len(buf)-1]
		var (
			next int32
			ok   bool
			err  error
		)
		if len(buf) == 1 {
			next, ok = w.step.first(cur, rng)
		} else {
			next, ok, err = w.step.next(buf[len(buf)-2], cur, rng)
			if err != nil {
				return buf, err
			}
		}
		if !ok {
			break
		}
		buf = append(buf, next)
	}
	return buf, nil
}

// stream derives a fresh random stream for one simulation run.
func (w *Walker) stream() *rand.Rand {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.streams++
	return deriveRNG(w.rng, w.streams)
}
