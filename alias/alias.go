package alias

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for table construction.
var (
	// ErrEmptyDistribution is returned when Build receives zero outcomes.
	ErrEmptyDistribution = errors.New("alias: empty distribution")

	// ErrInvalidProbability is returned for a negative, NaN or infinite entry.
	ErrInvalidProbability = errors.New("alias: invalid probability")

	// ErrDegenerateDistribution is returned when weights cannot be normalized
	// because their sum is zero, negative or not finite.
	ErrDegenerateDistribution = errors.New("alias: degenerate distribution")
)

// Table is an immutable alias table over K outcomes.
type Table struct {
	cutoff []float64 // per-bin probability of keeping the bin's own index
	alt    []int     // per-bin alternate index
}

// Build constructs a Table from a normalized probability vector.
//
// Implementation:
//   - Stage 1: Validate entries (finite, ≥ 0).
//   - Stage 2: Scale each entry by K and split indices into "smaller" (< 1)
//     and "larger" (≥ 1) stacks.
//   - Stage 3: Pair one small with one large: the small bin keeps its scaled
//     value as cutoff and points at the large one; the large one loses the
//     deficit and is pushed back onto whichever stack it now belongs to.
//   - Stage 4: Whatever is left (floating-point residue) gets cutoff 1.0.
//
// Complexity: O(K) time, O(K) space.
func Build(probs []float64) (*Table, error) {
	k := len(probs)
	if k == 0 {
		return nil, ErrEmptyDistribution
	}

	scaled := make([]float64, k)
	smaller := make([]int, 0, k)
	larger := make([]int, 0, k)
	kf := float64(k)
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("%w: probs[%d]=%v", ErrInvalidProbability, i, p)
		}
		scaled[i] = p * kf
		if scaled[i] < 1.0 {
			smaller = append(smaller, i)
		} else {
			larger = append(larger, i)
		}
	}

	t := &Table{
		cutoff: make([]float64, k),
		alt:    make([]int, k),
	}
	var small, large int
	for len(smaller) > 0 && len(larger) > 0 {
		small = smaller[len(smaller)-1]
		smaller = smaller[:len(smaller)-1]
		large = larger[len(larger)-1]
		larger = larger[:len(larger)-1]

		t.cutoff[small] = scaled[small]
		t.alt[small] = large

		scaled[large] -= 1.0 - scaled[small]
		if scaled[large] < 1.0 {
			smaller = append(smaller, large)
		} else {
			larger = append(larger, large)
		}
	}

	// Residue: these bins never select their alternate.
	for _, i := range larger {
		t.cutoff[i] = 1.0
		t.alt[i] = i
	}
	for _, i := range smaller {
		t.cutoff[i] = 1.0
		t.alt[i] = i
	}

	return t, nil
}

// Normalize divides weights by their sum. The input is not modified.
//
// Returns ErrInvalidProbability for a negative or non-finite weight and
// ErrDegenerateDistribution when the sum is not a positive finite number
// (e.g. every weight underflowed to zero after a 1/q scaling).
//
// Complexity: O(K).
func Normalize(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyDistribution
	}

	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weights[%d]=%v", ErrInvalidProbability, i, w)
		}
		sum += w
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: sum=%v over %d weights", ErrDegenerateDistribution, sum, len(weights))
	}

	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / sum
	}

	return probs, nil
}

// FromWeights normalizes weights and builds a Table in one step.
func FromWeights(weights []float64) (*Table, error) {
	probs, err := Normalize(weights)
	if err != nil {
		return nil, err
	}

	return Build(probs)
}

// Draw returns an index in [0, K) distributed according to the table.
// Two independent draws from rng per call; the table is not modified.
//
// Complexity: O(1).
func (t *Table) Draw(rng *rand.Rand) int {
	kk := rng.Intn(len(t.cutoff))
	if rng.Float64() < t.cutoff[kk] {
		return kk
	}

	return t.alt[kk]
}

// Len returns the number of outcomes K.
func (t *Table) Len() int { return len(t.cutoff) }

// Cutoff returns the keep-probability of bin i.
func (t *Table) Cutoff(i int) float64 { return t.cutoff[i] }

// Alias returns the alternate outcome of bin i.
func (t *Table) Alias(i int) int { return t.alt[i] }

// Probabilities reconstructs the distribution the table encodes. Bin i
// contributes cutoff[i]/K to outcome i and (1-cutoff[i])/K to alt[i].
//
// Complexity: O(K).
func (t *Table) Probabilities() []float64 {
	k := len(t.cutoff)
	out := make([]float64, k)
	kf := float64(k)
	for i, c := range t.cutoff {
		out[i] += c / kf
		out[t.alt[i]] += (1.0 - c) / kf
	}

	return out
}
