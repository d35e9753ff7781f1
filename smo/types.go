// Package smo: algorithm selection, solver options and sentinel errors for
// Sequential Minimal Optimization training.
package smo

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
)

// Algorithm selects the working-set-selection strategy.
type Algorithm int

const (
	// Platt is the original heuristic pair selection (Platt 1998) with a
	// per-example error cache.
	Platt Algorithm = iota

	// Fan is the second-order working-set selection (Fan, Chen, Lin 2005)
	// with a per-example gradient vector.
	Fan
)

// String returns the CLI spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Platt:
		return "platt"
	case Fan:
		return "fan"
	default:
		return "unknown"
	}
}

// Numeric floors shared by both drivers.
const (
	// tau replaces non-positive curvature in the two-variable subproblem,
	// so indefinite kernels (poly, sigmoid) and numerically zero curvature
	// never divide by zero.
	tau = 1e-12

	// DefaultTolerance is the KKT violation tolerance of the Platt driver.
	DefaultTolerance = 1e-3

	// DefaultEpsilon is the progress / tie-break threshold of the
	// two-variable step and the Fan stopping threshold (G_max - G_min).
	DefaultEpsilon = 1e-3

	// DefaultSeed seeds the partner-rotation source when the caller does
	// not supply one. A fixed seed keeps default runs reproducible.
	DefaultSeed = 1
)

// Sentinel errors of the training entry point.
var (
	// ErrNilModel indicates a nil *svm.Model passed to Train.
	ErrNilModel = errors.New("smo: model is nil")

	// ErrUnknownAlgorithm indicates an Algorithm outside {Platt, Fan}.
	ErrUnknownAlgorithm = errors.New("smo: unknown optimization algorithm")

	// ErrBadTolerance indicates a non-positive or non-finite Tolerance.
	ErrBadTolerance = errors.New("smo: Tolerance must be positive and finite")

	// ErrBadEpsilon indicates a non-positive or non-finite Epsilon.
	ErrBadEpsilon = errors.New("smo: Epsilon must be positive and finite")
)

// Options configures both SMO drivers.
//
//	Tolerance – KKT violation tolerance for the Platt examine step.
//	Epsilon   – minimum-progress / tie-break threshold of the two-variable
//	            step, and the Fan convergence threshold G_max - G_min.
//	Rand      – source for the Platt partner rotations. Randomness is an
//	            explicit dependency so training is deterministic under a
//	            fixed seed; nil means rand.NewSource(DefaultSeed).
//	Verbose   – print periodic progress lines (iteration, error counts;
//	            the Fan driver also prints the objective) during training.
type Options struct {
	Tolerance float64
	Epsilon   float64
	Rand      *rand.Rand
	Verbose   bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Epsilon:   DefaultEpsilon,
	}
}

// Validate checks that the option values are usable. The Rand field may be
// nil; Train installs the default source.
func (o *Options) Validate() error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return ErrBadTolerance
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return ErrBadEpsilon
	}

	return nil
}

// Result reports how training ended. Reaching the iteration cap is not an
// error: the model keeps the α reached so far and CapReached flags it.
type Result struct {
	Algorithm  Algorithm
	Iterations int
	CapReached bool
}
