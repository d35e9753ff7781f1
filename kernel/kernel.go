package kernel

import (
	"math"

	"github.com/katalvlaran/svmkit/vector"
)

// Compute evaluates K(a, b) for the selected kernel type.
//
// Closed forms:
//
//	Linear  : ⟨a, b⟩
//	Poly    : (CoefLin·⟨a,b⟩ + CoefConst)^PolyDegree
//	RBF     : exp(-RBFGamma·(‖a‖² - 2⟨a,b⟩ + ‖b‖²))
//	Sigmoid : tanh(CoefLin·⟨a,b⟩ + CoefConst)
//
// The RBF form reuses the norms cached on the vectors, so each evaluation
// costs one sparse dot product regardless of kernel type.
//
// Returns ErrUnknownKernel for a Type outside the enum.
func Compute(typ Type, p Params, a, b *vector.FeatureVector) (float64, error) {
	switch typ {
	case Linear:
		return vector.Dot(a, b), nil
	case Poly:
		return math.Pow(p.CoefLin*vector.Dot(a, b)+p.CoefConst, float64(p.PolyDegree)), nil
	case RBF:
		return math.Exp(-p.RBFGamma * (a.TwoNormSq - 2*vector.Dot(a, b) + b.TwoNormSq)), nil
	case Sigmoid:
		return math.Tanh(p.CoefLin*vector.Dot(a, b) + p.CoefConst), nil
	default:
		return 0, ErrUnknownKernel
	}
}
