// Package vector defines the sparse feature-vector type consumed by the
// kernel layer, together with its validation sentinels.
package vector

import "errors"

// MaxIndex is the largest admissible feature index. Indices are 1-based;
// anything above this bound is treated as a data error rather than a
// legitimate feature.
const MaxIndex = 99999999

// Sentinel errors for feature-vector construction and validation.
var (
	// ErrBadIndex indicates a feature index < 1 or > MaxIndex.
	ErrBadIndex = errors.New("vector: feature index out of range")

	// ErrIndexOrder indicates feature indices that are not strictly ascending.
	ErrIndexOrder = errors.New("vector: feature indices must be strictly ascending")

	// ErrNonFiniteValue indicates a NaN or ±Inf feature value or factor.
	ErrNonFiniteValue = errors.New("vector: non-finite value")

	// ErrBadLabel indicates a label outside {-1, +1}.
	ErrBadLabel = errors.New("vector: label must be -1 or +1")
)

// Feature is a single (index, value) entry of a sparse vector. Entries with
// value zero are simply absent from the vector.
type Feature struct {
	Index int
	Value float64
}

// FeatureVector is one exemplar in the original feature space, stored
// sparsely: feature indices not present are implicitly zero.
//
// Fields:
//
//	Features  – (index, value) pairs with strictly ascending 1-based indices.
//	TwoNormSq – cached squared Euclidean norm ‖x‖² (the RBF kernel needs it).
//	Label     – class of the exemplar, +1 or -1.
//	Factor    – multiplicative factor carried with the exemplar; 1 unless
//	            the data source says otherwise. The kernels and the
//	            decision function do not read it.
//
// A FeatureVector is immutable after construction: New computes the cached
// norm once and nothing in this module writes to a vector afterwards.
type FeatureVector struct {
	Features  []Feature
	TwoNormSq float64
	Label     int8
	Factor    float64
}
