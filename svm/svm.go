package svm

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// DecisionWithBias evaluates the decision function for exemplar k with an
// explicit bias:
//
//	f(x_k) = Σ_{i < TrainingCount, αᵢ > 0} αᵢ yᵢ K(i, k) − b
//
// Training and test exemplars share one kernel index space, so k may
// address either split. Only support vectors (αᵢ > 0) contribute.
func (m *Model) DecisionWithBias(k int, b float64) float64 {
	var s float64
	for i := 0; i < m.TrainingCount; i++ {
		if m.Alpha[i] > 0 {
			s += m.Alpha[i] * float64(m.Labels[i]) * m.Kernel.Eval(i, k)
		}
	}

	return s - b
}

// Decision evaluates the decision function for exemplar k using the
// model's learned bias.
func (m *Model) Decision(k int) float64 {
	return m.DecisionWithBias(k, m.B)
}

// Objective computes the dual objective
//
//	Σᵢ αᵢ − ½ Σᵢⱼ yᵢ yⱼ αᵢ αⱼ K(i, j)
//
// over the training exemplars. Diagnostic only; the solver never needs it.
//
// Complexity: O(TrainingCount²) kernel evaluations.
func (m *Model) Objective() float64 {
	n := m.TrainingCount
	var quad float64
	for i := 0; i < n; i++ {
		if m.Alpha[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if m.Alpha[j] == 0 {
				continue
			}
			quad += float64(m.Labels[i]) * float64(m.Labels[j]) * m.Alpha[i] * m.Alpha[j] * m.Kernel.Eval(i, j)
		}
	}

	return floats.Sum(m.Alpha[:n]) - quad/2
}

// SupportCounts partitions the training multipliers into the three KKT
// bands: lower bound (α = 0, non-support), upper bound (α = C, bound
// support / misclassified), and unbound (0 < α < C).
func (m *Model) SupportCounts() (lower, upper, unbound int) {
	for i := 0; i < m.TrainingCount; i++ {
		switch a := m.Alpha[i]; {
		case a <= 0:
			lower++
		case a >= m.C(i):
			upper++
		default:
			unbound++
		}
	}

	return lower, upper, unbound
}

// WriteResults writes one line per exemplar (training then test) in the
// form "<prediction>\t<label>" with scientific notation, matching the
// model-file contract.
func (m *Model) WriteResults(w io.Writer) error {
	total := m.TrainingCount + m.TestCount
	for i := 0; i < total; i++ {
		if _, err := fmt.Fprintf(w, "%e\t%e\n", m.Decision(i), float64(m.Labels[i])); err != nil {
			return fmt.Errorf("svm: writing results: %w", err)
		}
	}

	return nil
}
