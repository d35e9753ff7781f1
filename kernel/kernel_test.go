package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/svmkit/kernel"
	"github.com/katalvlaran/svmkit/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture vectors shared by the kernel tests.
func testVectors() []*vector.FeatureVector {
	return []*vector.FeatureVector{
		vector.MustNew([]vector.Feature{{Index: 1, Value: 1}, {Index: 2, Value: 1}}, 1, 1),
		vector.MustNew([]vector.Feature{{Index: 1, Value: 2}, {Index: 2, Value: 2}}, 1, 1),
		vector.MustNew([]vector.Feature{{Index: 1, Value: -1}, {Index: 2, Value: -1}}, -1, 1),
		vector.MustNew([]vector.Feature{{Index: 2, Value: 3}, {Index: 5, Value: 4}}, -1, 1),
	}
}

// TestCompute_ClosedForms checks each kernel against its formula on a
// hand-computed pair.
func TestCompute_ClosedForms(t *testing.T) {
	a := vector.MustNew([]vector.Feature{{Index: 1, Value: 1}, {Index: 2, Value: 2}}, 1, 1)
	b := vector.MustNew([]vector.Feature{{Index: 1, Value: 3}, {Index: 3, Value: 1}}, -1, 1)
	dot := 3.0 // only index 1 overlaps

	p := kernel.Params{CoefLin: 2, CoefConst: 1, PolyDegree: 2, RBFGamma: 0.5}

	lin, err := kernel.Compute(kernel.Linear, p, a, b)
	require.NoError(t, err)
	assert.InDelta(t, dot, lin, 1e-12)

	poly, err := kernel.Compute(kernel.Poly, p, a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2*dot+1, 2), poly, 1e-12)

	rbf, err := kernel.Compute(kernel.RBF, p, a, b)
	require.NoError(t, err)
	// ‖a‖² = 5, ‖b‖² = 10, ‖a-b‖² = 5 - 2*3 + 10 = 9.
	assert.InDelta(t, math.Exp(-0.5*9), rbf, 1e-12)

	sig, err := kernel.Compute(kernel.Sigmoid, p, a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Tanh(2*dot+1), sig, 1e-12)
}

// TestCompute_UnknownKernel verifies the InvalidKernel failure mode.
func TestCompute_UnknownKernel(t *testing.T) {
	a := vector.MustNew(nil, 1, 1)
	_, err := kernel.Compute(kernel.Type(42), kernel.DefaultParams(), a, a)
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
}

// TestNewGram_SymmetryLaw verifies K(i,j) == K(j,i) for every kernel type
// over the fixture set.
func TestNewGram_SymmetryLaw(t *testing.T) {
	vecs := testVectors()
	p := kernel.Params{CoefLin: 1, CoefConst: 1, PolyDegree: 3, RBFGamma: 1}

	for _, typ := range []kernel.Type{kernel.Linear, kernel.Poly, kernel.RBF, kernel.Sigmoid} {
		g, err := kernel.NewGram(vecs, typ, p)
		require.NoError(t, err, "kernel %v", typ)
		for i := 0; i < g.Len(); i++ {
			for j := 0; j < g.Len(); j++ {
				assert.Equal(t, g.Eval(i, j), g.Eval(j, i), "kernel %v asymmetric at (%d,%d)", typ, i, j)
			}
		}
	}
}

// TestNewGram_MatchesDirectCompute verifies every precomputed entry equals
// a direct kernel evaluation.
func TestNewGram_MatchesDirectCompute(t *testing.T) {
	vecs := testVectors()
	p := kernel.Params{RBFGamma: 0.7}

	g, err := kernel.NewGram(vecs, kernel.RBF, p)
	require.NoError(t, err)

	for i := range vecs {
		for j := range vecs {
			want, err := kernel.Compute(kernel.RBF, p, vecs[i], vecs[j])
			require.NoError(t, err)
			assert.InDelta(t, want, g.Eval(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestNewGram_RBFDiagonal verifies the RBF diagonal is exactly 1 and the
// linear diagonal is non-negative.
func TestNewGram_RBFDiagonal(t *testing.T) {
	vecs := testVectors()

	rbf, err := kernel.NewGram(vecs, kernel.RBF, kernel.Params{RBFGamma: 2})
	require.NoError(t, err)
	lin, err := kernel.NewGram(vecs, kernel.Linear, kernel.DefaultParams())
	require.NoError(t, err)

	for i := range vecs {
		assert.InDelta(t, 1.0, rbf.Eval(i, i), 1e-12, "RBF K(x,x) must be 1")
		assert.GreaterOrEqual(t, lin.Eval(i, i), 0.0, "linear diagonal is a squared norm")
	}
}

// TestNewGram_Validation covers the pre-allocation error paths.
func TestNewGram_Validation(t *testing.T) {
	_, err := kernel.NewGram(nil, kernel.Linear, kernel.DefaultParams())
	assert.ErrorIs(t, err, kernel.ErrNoVectors)

	_, err = kernel.NewGram(testVectors(), kernel.Type(-1), kernel.DefaultParams())
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
}

// TestOnTheFly_AgreesWithGram verifies both Evaluator variants produce the
// same values.
func TestOnTheFly_AgreesWithGram(t *testing.T) {
	vecs := testVectors()
	p := kernel.Params{CoefLin: 0.5, CoefConst: -1, PolyDegree: 2}

	g, err := kernel.NewGram(vecs, kernel.Poly, p)
	require.NoError(t, err)
	f, err := kernel.NewOnTheFly(vecs, kernel.Poly, p)
	require.NoError(t, err)

	require.Equal(t, g.Len(), f.Len())
	for i := range vecs {
		for j := range vecs {
			assert.InDelta(t, g.Eval(i, j), f.Eval(i, j), 1e-12)
		}
	}
}
