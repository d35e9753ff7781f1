package smo

// projectPair renormalizes a freshly stepped multiplier pair back into the
// feasible region while preserving the equality constraint
// y1·α1 + y2·α2 = sum (the value the pair held before the step).
//
// The projection runs in two passes: clip α1 to [0, c1] and recover α2
// from the equality, then clip α2 to [0, c2] and recover α1. For a step
// that was already box-clipped this is the identity; on ties and
// floored-curvature endpoint steps it is the numerically safe way to land
// exactly on the box.
//
// Both drivers funnel their updates through here, which is what keeps the
// equality invariant Σ yᵢαᵢ = 0 intact at every observable step.
func projectPair(a1, y1, c1, a2, y2, c2, sum float64) (float64, float64) {
	// Pass 1: box α1, re-derive α2 from the constraint line.
	if a1 > c1 {
		a1 = c1
	}
	if a1 < 0 {
		a1 = 0
	}
	a2 = y2 * (sum - y1*a1)

	// Pass 2: box α2, re-derive α1.
	if a2 > c2 {
		a2 = c2
	}
	if a2 < 0 {
		a2 = 0
	}
	a1 = y1 * (sum - y2*a2)

	return a1, a2
}

// pairBounds computes the [L, H] interval admissible for the second
// multiplier of a pair under the equality constraint and the per-example
// boxes [0,c1] × [0,c2].
//
//	y1 == y2: α1 + α2 = γ is conserved, so L = max(0, γ-c1), H = min(c2, γ).
//	y1 != y2: α1 - α2 = γ is conserved, so L = max(0, -γ), H = min(c2, c1-γ).
//
// L == H means the line segment inside the box is a single point and the
// step must be rejected.
func pairBounds(alph1, alph2, c1, c2 float64, sameSign bool) (low, high float64) {
	if sameSign {
		gamma := alph1 + alph2
		low, high = 0, gamma
		if gamma > c1 {
			low = gamma - c1
		}
		if high > c2 {
			high = c2
		}

		return low, high
	}

	gamma := alph1 - alph2
	low, high = 0, c1-gamma
	if gamma < 0 {
		low = -gamma
	}
	if high > c2 {
		high = c2
	}

	return low, high
}
