// Package node2vec defines the graph contract, tunable options and error
// definitions for second-order random walks.
package node2vec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/lvwalk/alias"
)

// Sentinel errors for walk generation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("node2vec: graph is nil")

	// ErrConfiguration is returned for invalid hyperparameters or options.
	ErrConfiguration = errors.New("node2vec: invalid configuration")

	// ErrStaleCache is returned when a cache is used against a graph or
	// parameters it was not built for, or a vertex/edge lookup misses.
	ErrStaleCache = errors.New("node2vec: stale transition cache")

	// ErrDegenerateDistribution is returned when transition weights cannot be
	// normalized (non-positive or non-finite sum).
	ErrDegenerateDistribution = alias.ErrDegenerateDistribution
)

// Graph is the read-only contract a walk source must satisfy.
// core.Graph and gonumgraph.Graph implement it.
//
// NeighborIDs must return unique IDs in a fixed sorted order (out-neighbors
// for directed graphs). Weight must report ok=true for every listed neighbor.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
	Weight(from, to string) (float64, bool)
	HasEdge(from, to string) bool
	Directed() bool
}

// Mode selects how a Walker draws each step.
type Mode int

const (
	// ModeUnbiased draws uniformly among the current vertex's neighbors.
	// Chosen when p == 1, q == 1 and the walk is unweighted; no tables are built.
	ModeUnbiased Mode = iota

	// ModeBiased draws from precomputed node/edge alias tables.
	ModeBiased
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeUnbiased:
		return "unbiased"
	case ModeBiased:
		return "biased"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Defaults.
const (
	DefaultP             = 1.0
	DefaultQ             = 1.0
	DefaultSeed          = int64(1)
	DefaultBatchSize     = 4096
	DefaultProgressEvery = 10000

	// minSampleNeighbors is the smallest meaningful neighbor cap (the stride
	// formula divides by cap-1).
	minSampleNeighbors = 2
)

// Option configures a Walker or a TransitionCache via functional arguments.
// Invalid values are recorded and surfaced as ErrConfiguration on construction.
type Option func(*Options)

// Options holds hyperparameters, execution knobs and progress hooks.
type Options struct {
	// Ctx allows cancellation of Precompute.
	Ctx context.Context

	// P is the return parameter (> 0).
	P float64

	// Q is the in-out parameter (> 0).
	Q float64

	// Weighted makes transitions proportional to edge weights; when false every
	// edge counts as 1.0.
	Weighted bool

	// NumSampleNeighbors caps the neighbor list used for table construction.
	// 0 disables the cap; otherwise it must be ≥ 2.
	NumSampleNeighbors int

	// Workers bounds the goroutines used by Precompute and SimulateParallel.
	Workers int

	// Seed drives every random choice; 0 selects DefaultSeed.
	Seed int64

	// BatchSize is the number of start vertices SimulateParallel materializes
	// before emitting them in order.
	BatchSize int

	// ProgressEvery controls how often progress hooks fire (and at completion).
	ProgressEvery int

	// OnNodeTable reports node-table progress (done, total). It runs on the
	// precompute workers, one call at a time, with done strictly increasing.
	OnNodeTable func(done, total int)

	// OnEdgeTable reports edge-table progress (done, total), serialized the
	// same way as OnNodeTable.
	OnEdgeTable func(done, total int)

	// OnEpoch is called when an epoch starts (1-based epoch, total epochs).
	OnEpoch func(epoch, total int)

	// Logger receives debug/info records; discards by default.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - p = q = 1, weighted transitions
//   - no neighbor cap
//   - one worker per GOMAXPROCS
//   - seed 1, batch 4096, progress every 10000 units
//   - no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		P:             DefaultP,
		Q:             DefaultQ,
		Weighted:      true,
		Workers:       runtime.GOMAXPROCS(0),
		Seed:          DefaultSeed,
		BatchSize:     DefaultBatchSize,
		ProgressEvery: DefaultProgressEvery,
		OnNodeTable:   func(int, int) {},
		OnEdgeTable:   func(int, int) {},
		OnEpoch:       func(int, int) {},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation of Precompute.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithP sets the return parameter p (> 0).
func WithP(p float64) Option {
	return func(o *Options) { o.P = p }
}

// WithQ sets the in-out parameter q (> 0).
func WithQ(q float64) Option {
	return func(o *Options) { o.Q = q }
}

// WithWeighted toggles weight-proportional transitions.
func WithWeighted(weighted bool) Option {
	return func(o *Options) { o.Weighted = weighted }
}

// WithNumSampleNeighbors caps the neighbor list of high-degree vertices
// (0 disables; otherwise ≥ 2).
func WithNumSampleNeighbors(n int) Option {
	return func(o *Options) { o.NumSampleNeighbors = n }
}

// WithWorkers sets the worker-pool size (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrConfiguration, n)
			return
		}
		o.Workers = n
	}
}

// WithSeed fixes the random stream (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBatchSize sets the SimulateParallel batch size (≥ 1).
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: batch size must be ≥ 1 (%d)", ErrConfiguration, n)
			return
		}
		o.BatchSize = n
	}
}

// WithProgressEvery sets the hook cadence (≥ 1).
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: progress cadence must be ≥ 1 (%d)", ErrConfiguration, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithOnNodeTable registers a node-table progress hook. fn is called from
// worker goroutines but never concurrently with itself.
func WithOnNodeTable(fn func(done, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNodeTable = fn
		}
	}
}

// WithOnEdgeTable registers an edge-table progress hook.
func WithOnEdgeTable(fn func(done, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEdgeTable = fn
		}
	}
}

// WithOnEpoch registers an epoch-start hook.
func WithOnEpoch(fn func(epoch, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

// WithLogger routes debug/info records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolveOptions applies opts over DefaultOptions and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	return o, o.validate()
}

// validate checks the hyperparameters that cannot be checked per option.
func (o Options) validate() error {
	if !(o.P > 0) || math.IsInf(o.P, 0) {
		return fmt.Errorf("%w: p must be a positive finite number (%v)", ErrConfiguration, o.P)
	}
	if !(o.Q > 0) || math.IsInf(o.Q, 0) {
		return fmt.Errorf("%w: q must be a positive finite number (%v)", ErrConfiguration, o.Q)
	}
	if o.NumSampleNeighbors != 0 && o.NumSampleNeighbors < minSampleNeighbors {
		return fmt.Errorf("%w: num sample neighbors must be 0 or ≥ %d (%d)",
			ErrConfiguration, minSampleNeighbors, o.NumSampleNeighbors)
	}

	return nil
}

// vanilla reports whether the options describe plain DeepWalk.
func (o Options) vanilla() bool {
	return o.P == 1 && o.Q == 1 && !o.Weighted
}

// params is the subset of Options a TransitionCache is scoped to.
type params struct {
	p, q        float64
	weighted    bool
	sampleLimit int
}

func (o Options) params() params {
	return params{p: o.P, q: o.Q, weighted: o.Weighted, sampleLimit: o.NumSampleNeighbors}
}

// checkWalkArgs validates per-call walk parameters.
func checkWalkArgs(numEpochs, walkLen int) error {
	if numEpochs < 1 {
		return fmt.Errorf("%w: numEpochs must be ≥ 1 (%d)", ErrConfiguration, numEpochs)
	}
	if walkLen < 1 {
		return fmt.Errorf("%w: walkLen must be ≥ 1 (%d)", ErrConfiguration, walkLen)
	}

	return nil
}
