package smo

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/svmkit/svm"
)

// Train optimizes the model's Lagrange multipliers with the selected SMO
// algorithm and recovers the bias.
//
// Steps:
//  1. Validate the model and options before allocating anything.
//  2. Resolve options (nil opts = DefaultOptions; nil Rand = the
//     deterministic default source).
//  3. Allocate fresh α (all zero) and reset b.
//  4. Run the selected driver to convergence or the iteration cap.
//  5. Refresh the model diagnostics.
//
// Reaching the iteration cap is reported through Result.CapReached, not as
// an error: the model keeps the multipliers reached so far. Errors come
// only from validation and from an unknown algorithm, in which case the
// model is left untouched.
func Train(m *svm.Model, algo Algorithm, opts *Options) (*Result, error) {
	// 1) All failures happen before any allocation.
	if m == nil {
		return nil, ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// 2) Options resolution.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(DefaultSeed))
	}
	if algo != Platt && algo != Fan {
		return nil, ErrUnknownAlgorithm
	}

	// 3) Fresh multipliers; exactly one per-example cache is allocated by
	//    the driver below (error cache or gradient, never both).
	m.Alpha = make([]float64, m.TrainingCount)
	m.B = 0

	// 4) Drive to convergence.
	var res *Result
	switch algo {
	case Platt:
		res = newPlattSolver(m, o).run()
	case Fan:
		res = newFanSolver(m, o).run()
	}

	// 5) Final diagnostics snapshot.
	m.ComputeDiagnostics()

	return res, nil
}
