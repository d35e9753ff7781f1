package vector

import "math"

// New builds a FeatureVector from features, a class label and a factor,
// computing the cached squared norm.
//
// Steps:
//  1. Validate label ∈ {-1, +1} and factor finite.
//  2. Validate feature indices (1-based, strictly ascending, ≤ MaxIndex)
//     and feature values (finite).
//  3. Compute TwoNormSq = Dot(v, v) and return the vector.
//
// Complexity: O(len(features)).
func New(features []Feature, label int8, factor float64) (*FeatureVector, error) {
	// 1) Label and factor checks.
	if label != 1 && label != -1 {
		return nil, ErrBadLabel
	}
	if isNonFinite(factor) {
		return nil, ErrNonFiniteValue
	}

	// 2) Index ordering and value finiteness.
	prev := 0
	for _, f := range features {
		if f.Index < 1 || f.Index > MaxIndex {
			return nil, ErrBadIndex
		}
		if f.Index <= prev {
			return nil, ErrIndexOrder
		}
		if isNonFinite(f.Value) {
			return nil, ErrNonFiniteValue
		}
		prev = f.Index
	}

	// 3) Cache the squared norm once; kernels read it, nobody recomputes it.
	v := &FeatureVector{Features: features, Label: label, Factor: factor}
	v.TwoNormSq = Dot(v, v)

	return v, nil
}

// MustNew is New that panics on invalid input. Intended for fixtures and
// examples where the input is a literal.
func MustNew(features []Feature, label int8, factor float64) *FeatureVector {
	v, err := New(features, label, factor)
	if err != nil {
		panic(err)
	}

	return v
}

// Dot computes the inner product ⟨a, b⟩ of two sparse vectors by merging
// their ascending index sequences: advance whichever side holds the smaller
// current index; on equal indices accumulate the product and advance both.
// Either vector empty yields 0. Inputs are not mutated.
//
// This is the innermost hot path of Gram construction, so it works directly
// on the slices with two cursors and no allocation.
//
// Complexity: O(len(a.Features) + len(b.Features)).
func Dot(a, b *FeatureVector) float64 {
	var sum float64
	af, bf := a.Features, b.Features
	i, j := 0, 0
	for i < len(af) && j < len(bf) {
		switch {
		case af[i].Index < bf[j].Index:
			i++
		case af[i].Index > bf[j].Index:
			j++
		default:
			sum += af[i].Value * bf[j].Value
			i++
			j++
		}
	}

	return sum
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
