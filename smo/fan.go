package smo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/svmkit/svm"
)

// fanSolver runs SMO with the second-order working-set selection of Fan,
// Chen and Lin (2005). Instead of Platt's error cache it maintains the
// gradient G[i] = Σⱼ yᵢyⱼαⱼK(i,j) − 1 of the minimized dual
// ½αᵀQα − Σα (the negation of Model.Objective) for every training
// exemplar, which makes
// both the selection and the stopping criterion exact.
type fanSolver struct {
	m       *svm.Model
	grad    []float64
	eps     float64
	verbose bool
	n       int
}

func newFanSolver(m *svm.Model, o Options) *fanSolver {
	return &fanSolver{
		m:       m,
		grad:    make([]float64, m.TrainingCount),
		eps:     o.Epsilon,
		verbose: o.Verbose,
		n:       m.TrainingCount,
	}
}

// run drives the Fan loop: select a maximal-violating pair with
// second-order information, solve the two-variable subproblem, project
// into the box, and maintain the gradient, until the selection reports no
// pair (G_max - G_min < Epsilon) or the iteration cap is hit. The bias is
// not tracked inside the loop; it is recovered from the KKT conditions at
// the end (and on verbose ticks).
func (s *fanSolver) run() *Result {
	maxIter := s.m.MaxIter
	if maxIter < 1 {
		maxIter = math.MaxInt
	}

	// At α = 0 the dual gradient is exactly -e.
	for k := range s.grad {
		s.grad[k] = -1
	}

	res := &Result{Algorithm: Fan}
	iter := 0
	for {
		iter++
		if iter > maxIter {
			res.CapReached = true
			break
		}

		i, j := s.selectWorkingSet()
		if j < 0 {
			break // converged: no violating pair left
		}
		s.update(i, j)

		if s.verbose && iter%progressInterval(s.n) == 0 {
			s.m.B = s.bias()
			s.progress(iter)
		}
	}

	s.m.B = s.bias()
	res.Iterations = iter

	return res
}

// selectWorkingSet implements WSS-2. The first index maximizes
// -y_t·G[t] over the "up" feasibility set
//
//	I_up = { t : (y_t=+1 ∧ α_t<C_t) ∨ (y_t=-1 ∧ α_t>0) }
//
// and the second minimizes -b_t²/a_t over the "low" set members with
// positive first-order gain b_t = G_max + y_t·G[t], where a_t is the
// curvature of the (i,t) direction floored to tau for indefinite kernels.
//
// Returns (-1, -1) when G_max - G_min < Epsilon, which terminates
// training.
func (s *fanSolver) selectWorkingSet() (int, int) {
	m := s.m
	gMax := -math.MaxFloat64
	gMin := math.MaxFloat64

	// Select i over I_up.
	i := -1
	for t := 0; t < s.n; t++ {
		y := float64(m.Labels[t])
		if (y == 1 && m.Alpha[t] < m.C(t)) || (y == -1 && m.Alpha[t] > 0) {
			if v := -y * s.grad[t]; v >= gMax {
				gMax = v
				i = t
			}
		}
	}
	if i < 0 {
		return -1, -1
	}
	k11 := m.Kernel.Eval(i, i)

	// Select j over I_low by the second-order gain.
	j := -1
	objMin := math.MaxFloat64
	for t := 0; t < s.n; t++ {
		y := float64(m.Labels[t])
		if (y == 1 && m.Alpha[t] > 0) || (y == -1 && m.Alpha[t] < m.C(t)) {
			if v := -y * s.grad[t]; v <= gMin {
				gMin = v
			}
			b := gMax + y*s.grad[t]
			if b > 0 {
				a := k11 + m.Kernel.Eval(t, t) - 2*m.Kernel.Eval(i, t)
				if a <= 0 {
					a = tau
				}
				if obj := -(b * b) / a; obj <= objMin {
					objMin = obj
					j = t
				}
			}
		}
	}

	if gMax-gMin < s.eps {
		return -1, -1
	}

	return i, j
}

// update solves the two-variable subproblem for the selected pair and
// maintains the gradient for every training exemplar.
func (s *fanSolver) update(i, j int) {
	m := s.m
	yi, yj := float64(m.Labels[i]), float64(m.Labels[j])

	k11 := m.Kernel.Eval(i, i)
	k12 := m.Kernel.Eval(i, j)
	k22 := m.Kernel.Eval(j, j)
	a := k11 + k22 - 2*k12
	if a <= 0 {
		a = tau
	}
	// First-order coefficient along the pair direction.
	b := -yi*s.grad[i] + yj*s.grad[j]

	// Unconstrained analytic step, then the shared two-pass projection
	// back into the feasible box (preserving yᵢαᵢ + yⱼαⱼ).
	oldAi, oldAj := m.Alpha[i], m.Alpha[j]
	newAi := oldAi + yi*(b/a)
	newAj := oldAj - yj*(b/a)
	sum := yi*oldAi + yj*oldAj
	newAi, newAj = projectPair(newAi, yi, m.C(i), newAj, yj, m.C(j), sum)
	m.Alpha[i] = newAi
	m.Alpha[j] = newAj

	// Gradient maintenance over all exemplars with the realized deltas.
	dAi := newAi - oldAi
	dAj := newAj - oldAj
	for t := 0; t < s.n; t++ {
		yt := float64(m.Labels[t])
		s.grad[t] += yi*yt*m.Kernel.Eval(i, t)*dAi + yj*yt*m.Kernel.Eval(j, t)*dAj
	}
}

// bias recovers b from the KKT conditions, per class: the mean of y·G
// over unbound multipliers of that class, or the midpoint of the
// tightest bound envelopes when the class has no unbound multiplier.
// The result is (r₊ + r₋)/2.
func (s *fanSolver) bias() float64 {
	rPos := s.classBias(1)
	rNeg := s.classBias(-1)

	return (rPos + rNeg) / 2
}

// classBias computes the per-class bias estimate r for label y.
func (s *fanSolver) classBias(label int8) float64 {
	m := s.m
	ub := math.MaxFloat64
	lb := -math.MaxFloat64
	var free []float64

	for t := 0; t < s.n; t++ {
		if m.Labels[t] != label {
			continue
		}
		yG := float64(m.Labels[t]) * s.grad[t]
		switch {
		case m.Alpha[t] <= 0:
			// Lower-bounded α: for the positive class this tightens the
			// upper envelope, for the negative class the lower one.
			if label == 1 {
				ub = math.Min(ub, yG)
			} else {
				lb = math.Max(lb, yG)
			}
		case m.Alpha[t] >= m.C(t):
			if label == 1 {
				lb = math.Max(lb, yG)
			} else {
				ub = math.Min(ub, yG)
			}
		default:
			free = append(free, yG)
		}
	}

	if len(free) > 0 {
		return stat.Mean(free, nil)
	}

	return (ub + lb) / 2
}

// progress prints one verbose status line with the dual objective and
// fresh diagnostics.
func (s *fanSolver) progress(iter int) {
	d := s.m.ComputeDiagnostics()
	lower, upper, unbound := s.m.SupportCounts()
	fmt.Printf("fan: iter=%d obj=%.3f train_err=%d/%d test_err=%d/%d [bound=%d unbound=%d non_sv=%d]\n",
		iter, s.m.Objective(), d.TrainErrCount, s.m.TrainingCount, d.TestErrCount, s.m.TestCount,
		upper, unbound, lower)
}
