// Package alias implements the alias method (Kronmal–Peterson / Vose) for
// sampling from a fixed discrete distribution.
//
// A Table over K outcomes stores two parallel arrays: a cutoff in [0,1] and an
// alternate outcome per bin. Drawing picks a bin uniformly and flips a biased
// coin against the bin's cutoff:
//
//	kk := rng.Intn(K)
//	if rng.Float64() < cutoff[kk] { return kk }
//	return alt[kk]
//
// Complexity:
//   - Build: O(K) time, O(K) space.
//   - Draw:  O(1) time, two random draws, no allocations.
//
// Contract:
//   - Build expects a caller-normalized probability vector (sum ≈ 1). It does
//     not renormalize. Use Normalize (or FromWeights) for raw weights.
//   - A Table is immutable once built and safe for concurrent Draw calls as
//     long as each goroutine owns its *rand.Rand.
//
// Errors:
//
//	ErrEmptyDistribution      – K == 0.
//	ErrInvalidProbability     – an entry is negative, NaN or infinite.
//	ErrDegenerateDistribution – weights sum to a non-positive or non-finite value.
//
// Reference: R. A. Kronmal and A. V. Peterson, "On the alias method for
// generating random variables from a discrete distribution", The American
// Statistician 33(4), 1979.
package alias
