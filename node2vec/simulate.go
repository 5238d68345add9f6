// SPDX-License-Identifier: MIT

// File: simulate.go
// Role: epoch-based walk sequences: pull iterator, iter.Seq2 view, worker pool.
// Determinism:
//   - Each call to Simulate/Walks/SimulateParallel derives its own stream from
//     the walker seed, so calls never replay each other but a fresh walker with
//     the same seed reproduces the same sequence of calls.
//   - SimulateParallel seeds every fixed-size chunk of an epoch separately, so
//     its output does not depend on Workers or goroutine scheduling.
package node2vec

import (
	"context"
	"iter"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// parallelChunk is the number of consecutive start vertices one goroutine
// walks with one random stream in SimulateParallel.
const parallelChunk = 64

// WalkIterator is a finite, non-restartable, pull-based walk sequence:
// numEpochs × vertex-count walks. Use it like bufio.Scanner:
//
//	for it.Next() { use(it.Walk()) }
//	if err := it.Err(); err != nil { … }
//
// Stopping early is cancellation; nothing needs releasing.
// A WalkIterator is not safe for concurrent use.
type WalkIterator struct {
	w         *Walker
	numEpochs int
	walkLen   int
	rng       *rand.Rand

	order []int32 // current epoch permutation
	pos   int     // next index into order
	epoch int     // 1-based; 0 before the first Next
	buf   []int32
	walk  []string
	err   error
	done  bool
}

// Simulate returns a lazy walk sequence. For every epoch in 1..numEpochs the
// vertices are shuffled and one walk of at most walkLen vertices is emitted per
// vertex, in shuffled order.
func (w *Walker) Simulate(numEpochs, walkLen int) (*WalkIterator, error) {
	if err := checkWalkArgs(numEpochs, walkLen); err != nil {
		return nil, err
	}
	return &WalkIterator{
		w:         w,
		numEpochs: numEpochs,
		walkLen:   walkLen,
		rng:       w.stream(),
	}, nil
}

// Next materializes the next walk. It returns false when the sequence is
// exhausted or an error occurred (see Err).
func (it *WalkIterator) Next() bool {
	if it.done {
		return false
	}
	for it.order == nil || it.pos >= len(it.order) {
		if it.epoch >= it.numEpochs {
			it.done, it.walk = true, nil
			return false
		}
		it.startEpoch()
	}

	v := it.order[it.pos]
	it.pos++
	var err error
	it.buf, err = it.w.walk(v, it.walkLen, it.rng, it.buf)
	if err != nil {
		it.err, it.done, it.walk = err, true, nil
		return false
	}
	it.walk = it.w.snap.names(it.buf)
	return true
}

func (it *WalkIterator) startEpoch() {
	it.epoch++
	if it.order == nil {
		it.order = permRange(len(it.w.snap.ids), it.rng)
	} else {
		shuffleInPlace(it.order, it.rng)
	}
	it.pos = 0
	it.w.opts.OnEpoch(it.epoch, it.numEpochs)
	it.w.opts.Logger.Debug("epoch started", "epoch", it.epoch, "epochs", it.numEpochs)
}

// Walk returns the walk produced by the last successful Next. The slice is
// owned by the caller.
func (it *WalkIterator) Walk() []string { return it.walk }

// Epoch returns the 1-based epoch of the current walk.
func (it *WalkIterator) Epoch() int { return it.epoch }

// Err returns the error that stopped the iteration, if any.
func (it *WalkIterator) Err() error { return it.err }

// Walks exposes Simulate as a range-over-func sequence. A configuration or
// walk error is yielded once as (nil, err) and ends the sequence. Each range
// over the returned sequence starts a fresh simulation.
func (w *Walker) Walks(numEpochs, walkLen int) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		it, err := w.Simulate(numEpochs, walkLen)
		if err != nil {
			yield(nil, err)
			return
		}
		for it.Next() {
			if !yield(it.Walk(), nil) {
				return
			}
		}
		if err = it.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// SimulateParallel generates the same shape of sequence as Simulate across
// Options.Workers goroutines. Start vertices are processed in batches of
// Options.BatchSize; each batch is emitted in permutation order once complete.
//
// emit is called from the calling goroutine only. An emit error or ctx
// cancellation stops the run and is returned.
func (w *Walker) SimulateParallel(ctx context.Context, numEpochs, walkLen int, emit func(walk []string) error) error {
	if err := checkWalkArgs(numEpochs, walkLen); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := len(w.snap.ids)
	base := w.stream()
	var order []int32
	out := make([][]string, min(w.opts.BatchSize, n))

	for epoch := 1; epoch <= numEpochs; epoch++ {
		if order == nil {
			order = permRange(n, base)
		} else {
			shuffleInPlace(order, base)
		}
		epochSeed := base.Int63()
		w.opts.OnEpoch(epoch, numEpochs)
		w.opts.Logger.Info("epoch started", "epoch", epoch, "epochs", numEpochs, "walks", n)

		for lo := 0; lo < n; lo += w.opts.BatchSize {
			hi := min(lo+w.opts.BatchSize, n)
			batch := out[:hi-lo]
			if err := w.walkBatch(ctx, epochSeed, lo, order[lo:hi], walkLen, batch); err != nil {
				return err
			}
			for i, walk := range batch {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := emit(walk); err != nil {
					return err
				}
				batch[i] = nil
			}
		}
	}
	return nil
}

// walkBatch fills out[i] with the walk from starts[i]. offset is the position
// of starts[0] within the epoch permutation.
func (w *Walker) walkBatch(ctx context.Context, epochSeed int64, offset int, starts []int32, walkLen int, out [][]string) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.opts.Workers)
	for lo := 0; lo < len(starts); lo += parallelChunk {
		hi := min(lo+parallelChunk, len(starts))
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(deriveSeed(epochSeed, uint64(offset+lo))))
			var (
				buf []int32
				err error
			)
			for i := lo; i < hi; i++ {
				if err = gctx.Err(); err != nil {
					return err
				}
				buf, err = w.walk(starts[i], walkLen, rng, buf)
				if err != nil {
					return err
				}
				out[i] = w.snap.names(buf)
			}
			return nil
		})
	}
	return eg.Wait()
}
