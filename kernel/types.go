// Package kernel defines the kernel function family, the parameter bundle,
// and the per-index Evaluator abstraction the solver consumes.
package kernel

import "errors"

// Type selects one of the four closed-form kernels. The numeric tags 0–3
// are fixed and must not be reordered; the CLI selects a kernel by its
// String spelling.
type Type int

const (
	// Linear is the plain inner product ⟨a, b⟩.
	Linear Type = 0

	// Poly is the polynomial kernel (CoefLin·⟨a,b⟩ + CoefConst)^PolyDegree.
	Poly Type = 1

	// RBF is the Gaussian kernel exp(-γ·‖a-b‖²).
	RBF Type = 2

	// Sigmoid is the neural-net kernel tanh(CoefLin·⟨a,b⟩ + CoefConst).
	Sigmoid Type = 3
)

// String returns the CLI spelling of the kernel type.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case Poly:
		return "poly"
	case RBF:
		return "rbf"
	case Sigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// valid reports whether t names one of the four implemented kernels.
func (t Type) valid() bool {
	return t >= Linear && t <= Sigmoid
}

// Sentinel errors for the kernel layer.
var (
	// ErrUnknownKernel indicates a Type outside {Linear, Poly, RBF, Sigmoid}.
	ErrUnknownKernel = errors.New("kernel: unknown kernel type")

	// ErrNoVectors indicates an empty exemplar list passed to a builder.
	ErrNoVectors = errors.New("kernel: no feature vectors")
)

// Params bundles the free parameters of the kernel family. Fields that a
// given kernel does not use are ignored by it.
//
//	CoefLin    – linear coefficient of Poly and Sigmoid.
//	CoefConst  – additive constant of Poly and Sigmoid.
//	PolyDegree – exponent of Poly.
//	RBFGamma   – width of RBF.
type Params struct {
	CoefLin    float64
	CoefConst  float64
	PolyDegree int
	RBFGamma   float64
}

// DefaultParams returns the parameter bundle used when the caller does not
// override anything: unit linear coefficient, no additive constant, cubic
// polynomial, unit RBF width.
func DefaultParams() Params {
	return Params{
		CoefLin:    1,
		CoefConst:  0,
		PolyDegree: 3,
		RBFGamma:   1,
	}
}

// Evaluator yields kernel values by exemplar index. It is the only
// operation the SMO drivers consume; they never see feature vectors.
//
// Implementations must be symmetric (Eval(i,j) == Eval(j,i)) and safe for
// read-only use for the whole lifetime of training.
type Evaluator interface {
	// Eval returns K(xᵢ, xⱼ).
	Eval(i, j int) float64

	// Len returns the number of exemplars the evaluator covers.
	Len() int
}
