package smo

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/svmkit/svm"
)

// plattSolver runs the heuristic SMO of Platt (1998): KKT-violating
// examples are examined in alternating all/unbound sweeps, partners are
// picked by the |E1-E2| heuristic with randomized fallbacks, and a
// per-example error cache E[i] = f(xᵢ) - yᵢ is kept for the unbound set.
//
// The solver owns all mutable loop state (bias, Δb, error cache); nothing
// is shared with the Fan driver beyond the model itself.
//
// Penalties are per-example (C(i) = CPos or CNeg), matching the Fan
// driver; single-penalty configurations collapse to one C.
// TODO(penalties): the per-class box for this driver generalizes the
// original single-C formulation — confirm with the authors that the
// asymmetric box is wanted here too.
type plattSolver struct {
	m        *svm.Model
	errCache []float64
	b        float64
	deltaB   float64
	tol      float64
	eps      float64
	rnd      *rand.Rand
	verbose  bool
	n        int
}

func newPlattSolver(m *svm.Model, o Options) *plattSolver {
	return &plattSolver{
		m:        m,
		errCache: make([]float64, m.TrainingCount),
		tol:      o.Tolerance,
		eps:      o.Epsilon,
		rnd:      o.Rand,
		verbose:  o.Verbose,
		n:        m.TrainingCount,
	}
}

// run drives the outer loop: an examine-all sweep, then unbound-only
// sweeps for as long as they keep changing pairs, falling back to
// examine-all when an unbound sweep goes quiet. Training ends when an
// examine-all sweep changes nothing, or at the iteration cap.
func (s *plattSolver) run() *Result {
	maxIter := s.m.MaxIter
	if maxIter < 1 {
		maxIter = math.MaxInt
	}

	res := &Result{Algorithm: Platt}
	examineAll := true
	iter := 0
	for {
		numChanged := 0
		if examineAll {
			for k := 0; k < s.n; k++ {
				numChanged += s.examine(k)
			}
			examineAll = false
		} else {
			for k := 0; k < s.n; k++ {
				if s.m.Alpha[k] != 0 && s.m.Alpha[k] != s.m.C(k) {
					numChanged += s.examine(k)
				}
			}
			if numChanged == 0 {
				examineAll = true
			}
		}

		// One outer sweep = one iteration.
		iter++

		if s.verbose && iter%progressInterval(s.n) == 0 {
			s.m.B = s.b
			s.progress(iter, numChanged)
		}

		if numChanged == 0 && !examineAll {
			break // an examine-all sweep changed nothing: converged
		}
		if iter >= maxIter {
			res.CapReached = true
			break
		}
	}

	s.m.B = s.b
	res.Iterations = iter

	return res
}

// errorOf returns E_i = f(xᵢ) - yᵢ, reading the cache only for unbound
// multipliers (the cache is maintained exactly for those).
func (s *plattSolver) errorOf(i int) float64 {
	if a := s.m.Alpha[i]; a > 0 && a < s.m.C(i) {
		return s.errCache[i]
	}

	return s.m.DecisionWithBias(i, s.b) - float64(s.m.Labels[i])
}

// examine checks exemplar i1 for a KKT violation and, if it finds one,
// tries partners in three stages, stopping at the first successful step:
//
//  1. the unbound example maximizing |E1 - E2|;
//  2. the unbound examples, scanned from a random starting offset;
//  3. all examples, scanned from a random starting offset.
//
// Returns 1 when a pair changed, 0 otherwise.
func (s *plattSolver) examine(i1 int) int {
	y1 := float64(s.m.Labels[i1])
	alph1 := s.m.Alpha[i1]
	e1 := s.errorOf(i1)

	// KKT check: only violators are worth a step.
	r1 := y1 * e1
	if !((r1 < -s.tol && alph1 < s.m.C(i1)) || (r1 > s.tol && alph1 > 0)) {
		return 0
	}

	// 1) Heuristic partner: maximize |E1 - E2| over the unbound set.
	best, tmax := -1, 0.0
	for k := 0; k < s.n; k++ {
		if a := s.m.Alpha[k]; a > 0 && a < s.m.C(k) {
			if t := math.Abs(e1 - s.errCache[k]); t > tmax {
				tmax, best = t, k
			}
		}
	}
	if best >= 0 && s.step(i1, best) {
		return 1
	}

	// 2) Any unbound partner, random rotation.
	k0 := s.rnd.Intn(s.n)
	for k := k0; k < s.n+k0; k++ {
		i2 := k % s.n
		if a := s.m.Alpha[i2]; a > 0 && a < s.m.C(i2) {
			if s.step(i1, i2) {
				return 1
			}
		}
	}

	// 3) Any partner at all, random rotation. This deliberately probes
	// bound examples too: it occasionally unsticks degenerate cases.
	// TODO(platt): review whether restricting this sweep to unbound
	// partners changes convergence on real data.
	k0 = s.rnd.Intn(s.n)
	for k := k0; k < s.n+k0; k++ {
		if s.step(i1, k%s.n) {
			return 1
		}
	}

	return 0
}

// step attempts the two-variable update on (i1, i2). It solves the
// box-constrained one-dimensional quadratic along the equality line,
// rejects no-progress steps, renormalizes the pair into the feasible box,
// updates the bias from the KKT conditions, and maintains the error cache.
func (s *plattSolver) step(i1, i2 int) bool {
	if i1 == i2 {
		return false
	}

	m := s.m
	alph1, alph2 := m.Alpha[i1], m.Alpha[i2]
	y1, y2 := float64(m.Labels[i1]), float64(m.Labels[i2])
	c1, c2 := m.C(i1), m.C(i2)
	e1 := s.errorOf(i1)
	e2 := s.errorOf(i2)
	sgn := y1 * y2

	// Admissible interval for the new α₂ along the constraint line.
	low, high := pairBounds(alph1, alph2, c1, c2, y1 == y2)
	if low == high {
		return false
	}

	k11 := m.Kernel.Eval(i1, i1)
	k12 := m.Kernel.Eval(i1, i2)
	k22 := m.Kernel.Eval(i2, i2)

	// Curvature of the one-dimensional objective along the line.
	a := k11 + k22 - 2*k12

	var a2 float64
	if a > 0 {
		// Analytic minimum, clipped to the interval.
		a2 = alph2 + y2*(e1-e2)/a
		if a2 < low {
			a2 = low
		} else if a2 > high {
			a2 = high
		}
	} else {
		// Indefinite or flat direction: the objective is evaluated at both
		// interval endpoints and the better one wins; near-ties leave α₂
		// untouched so no-progress rejection below fires.
		q1 := -a / 2
		q2 := y2*(e1-e2) + a*alph2
		lowObj := q1*low*low + q2*low
		highObj := q1*high*high + q2*high
		switch {
		case lowObj > highObj+s.eps:
			a2 = low
		case lowObj < highObj-s.eps:
			a2 = high
		default:
			a2 = alph2
		}
	}

	// Reject steps too small to matter.
	if math.Abs(a2-alph2) < s.eps*(a2+alph2+s.eps) {
		return false
	}

	// Partner from the equality constraint, then the shared two-pass
	// feasibility renormalization.
	a1 := alph1 - sgn*(a2-alph2)
	sum := y1*alph1 + y2*alph2
	a1, a2 = projectPair(a1, y1, c1, a2, y2, c2, sum)

	// Bias from the KKT conditions: an unbound multiplier pins f exactly.
	var bnew float64
	switch {
	case a1 > 0 && a1 < c1:
		bnew = s.b + e1 + y1*(a1-alph1)*k11 + y2*(a2-alph2)*k12
	case a2 > 0 && a2 < c2:
		bnew = s.b + e2 + y1*(a1-alph1)*k12 + y2*(a2-alph2)*k22
	default:
		b1 := s.b + e1 + y1*(a1-alph1)*k11 + y2*(a2-alph2)*k12
		b2 := s.b + e2 + y1*(a1-alph1)*k12 + y2*(a2-alph2)*k22
		bnew = (b1 + b2) / 2
	}
	s.deltaB = bnew - s.b
	s.b = bnew

	// Error-cache maintenance for the (pre-step) unbound set; the stepped
	// pair is reset to zero, which the KKT conditions make exact for
	// whichever of the two ends up unbound.
	t1 := y1 * (a1 - alph1)
	t2 := y2 * (a2 - alph2)
	for i := 0; i < s.n; i++ {
		if alph := m.Alpha[i]; alph > 0 && alph < m.C(i) {
			s.errCache[i] += t1*m.Kernel.Eval(i1, i) + t2*m.Kernel.Eval(i2, i) - s.deltaB
		}
	}
	s.errCache[i1] = 0
	s.errCache[i2] = 0

	m.Alpha[i1] = a1
	m.Alpha[i2] = a2

	return true
}

// progress prints one verbose status line with fresh diagnostics.
func (s *plattSolver) progress(iter, numChanged int) {
	d := s.m.ComputeDiagnostics()
	lower, upper, unbound := s.m.SupportCounts()
	fmt.Printf("platt: iter=%d changed=%d train_err=%d/%d test_err=%d/%d [bound=%d unbound=%d non_sv=%d]\n",
		iter, numChanged, d.TrainErrCount, s.m.TrainingCount, d.TestErrCount, s.m.TestCount,
		upper, unbound, lower)
}

// progressInterval spaces verbose output: every min(100, n) iterations.
func progressInterval(n int) int {
	if n < 100 {
		return n
	}

	return 100
}
