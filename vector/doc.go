// Package vector implements sparse real-valued feature vectors and the
// merge-based inner product that powers every kernel evaluation.
//
// 🚀 What lives here?
//
//	A FeatureVector stores only the non-zero (index, value) pairs of an
//	exemplar, with strictly ascending 1-based indices, plus:
//	  • the cached squared norm ‖x‖² (needed by the RBF kernel)
//	  • the class label (+1 / -1)
//	  • an optional multiplicative factor
//
// ✨ Why sparse?
//
//	Training data in libsvm format is overwhelmingly sparse; the merge dot
//	product touches only the stored entries of both operands, so a Gram
//	matrix over N exemplars costs O(N²·nnz) rather than O(N²·dim).
//
// ⚙️ Usage:
//
//	v, err := vector.New([]vector.Feature{{Index: 1, Value: 2}, {Index: 4, Value: 1}}, +1, 1)
//	if err != nil { ... }
//	d := vector.Dot(v, w)
//
// Vectors are immutable after construction; New validates ordering and
// finiteness and caches the norm exactly once.
package vector
