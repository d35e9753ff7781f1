// Package smo trains the binary soft-margin SVM dual with Sequential
// Minimal Optimization: repeated analytic optimization of two Lagrange
// multipliers at a time under the box-and-equality constraint
//
//	Σᵢ yᵢαᵢ = 0,  0 ≤ αᵢ ≤ Cᵢ.
//
// 🚀 Two working-set selections, one update primitive:
//
//   - Platt  – the original 1998 heuristic: sweep KKT violators in
//     alternating all/unbound phases, pick partners by max |E1-E2| with
//     randomized fallbacks, maintain a per-example error cache.
//   - Fan    – second-order selection (Fan, Chen, Lin 2005): pick the
//     maximal-violating pair using the dual gradient, stop exactly when
//     G_max - G_min drops under Epsilon.
//
// Both funnel their step through the same box projection, which is what
// keeps the equality invariant intact at every observable step, and both
// tolerate indefinite kernels (poly, sigmoid): Fan floors the pair
// curvature at τ = 1e-12, Platt compares the objective at the two interval
// endpoints when the curvature is not positive.
//
// ✨ Determinism:
//
//	The only randomness is the starting offset of Platt's fallback
//	partner scans, drawn from Options.Rand — an explicit, seedable
//	source. A fixed seed reproduces training bit for bit.
//
// ⚙️ Usage:
//
//	opts := smo.DefaultOptions()
//	res, err := smo.Train(m, smo.Fan, &opts)
//	if err != nil { ... }
//	if res.CapReached { ... } // iteration cap is a flag, not an error
//
// The solver is single-threaded by design: every pair update invalidates
// the per-example cache globally, so there is nothing to parallelize
// inside the loop. Parallelism lives in the Gram precomputation instead.
package smo
