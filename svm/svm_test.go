package svm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/svmkit/svm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedKernel is a crafted kernel evaluator backed by an explicit matrix,
// used instead of real feature vectors.
type fixedKernel struct {
	m [][]float64
}

func (k *fixedKernel) Eval(i, j int) float64 { return k.m[i][j] }
func (k *fixedKernel) Len() int              { return len(k.m) }

// identityKernel returns a positive-definite (identity) kernel over n
// exemplars.
func identityKernel(n int) *fixedKernel {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}

	return &fixedKernel{m: m}
}

// TestNew_Validation walks the invalid-input conditions one by one.
func TestNew_Validation(t *testing.T) {
	k4 := identityKernel(4)
	labels := []int8{1, 1, -1, -1}

	// Baseline is valid.
	_, err := svm.New(k4, labels, svm.Config{})
	require.NoError(t, err)

	// Nil kernel.
	_, err = svm.New(nil, labels, svm.Config{})
	assert.ErrorIs(t, err, svm.ErrNilKernel)

	// Too few training exemplars.
	_, err = svm.New(identityKernel(1), []int8{1}, svm.Config{})
	assert.ErrorIs(t, err, svm.ErrTooFewExemplars)

	// Negative test count (training count exceeds labels).
	_, err = svm.New(k4, labels, svm.Config{TrainingCount: 5})
	assert.ErrorIs(t, err, svm.ErrBadTestCount)

	// Label outside {-1,+1}.
	_, err = svm.New(k4, []int8{1, 0, -1, -1}, svm.Config{})
	assert.ErrorIs(t, err, svm.ErrBadLabel)

	// Single-class training data.
	_, err = svm.New(k4, []int8{1, 1, 1, 1}, svm.Config{})
	assert.ErrorIs(t, err, svm.ErrMissingClass)

	// Negative penalty.
	_, err = svm.New(k4, labels, svm.Config{CPos: -1, CNeg: 1})
	assert.ErrorIs(t, err, svm.ErrNegativePenalty)

	// Kernel evaluator not covering training+test exemplars.
	_, err = svm.New(identityKernel(3), labels, svm.Config{})
	assert.ErrorIs(t, err, svm.ErrCountMismatch)
}

// TestNew_Defaults verifies Config zero-value resolution.
func TestNew_Defaults(t *testing.T) {
	m, err := svm.New(identityKernel(4), []int8{1, 1, -1, -1}, svm.Config{})
	require.NoError(t, err)

	assert.Equal(t, 4, m.TrainingCount)
	assert.Equal(t, 0, m.TestCount)
	assert.Equal(t, svm.DefaultC, m.CPos)
	assert.Equal(t, svm.DefaultC, m.CNeg)
	assert.Equal(t, svm.DefaultMaxIter, m.MaxIter)
}

// TestModel_PerExamplePenalty verifies C(i) follows the label.
func TestModel_PerExamplePenalty(t *testing.T) {
	m, err := svm.New(identityKernel(4), []int8{1, -1, 1, -1}, svm.Config{CPos: 10, CNeg: 1})
	require.NoError(t, err)

	assert.Equal(t, 10.0, m.C(0))
	assert.Equal(t, 1.0, m.C(1))
	assert.Equal(t, 10.0, m.C(2))
	assert.Equal(t, 1.0, m.C(3))
}

// TestModel_DecisionAndCounts exercises the decision sum and the KKT band
// partition with hand-set multipliers.
func TestModel_DecisionAndCounts(t *testing.T) {
	m, err := svm.New(identityKernel(4), []int8{1, 1, -1, -1}, svm.Config{C: 2})
	require.NoError(t, err)
	m.Alpha = []float64{0, 1, 2, 0.5}
	m.B = 0.25

	// Identity kernel: f(x_k) = α_k y_k − b.
	assert.InDelta(t, -0.25, m.Decision(0), 1e-12)
	assert.InDelta(t, 1-0.25, m.Decision(1), 1e-12)
	assert.InDelta(t, -2-0.25, m.Decision(2), 1e-12)
	assert.InDelta(t, -0.5-0.25, m.Decision(3), 1e-12)

	lower, upper, unbound := m.SupportCounts()
	assert.Equal(t, 1, lower, "α=0")
	assert.Equal(t, 1, upper, "α=C")
	assert.Equal(t, 2, unbound, "0<α<C")
}

// TestModel_Objective verifies the dual objective on a small closed-form
// case: identity kernel makes it Σα − ½Σα².
func TestModel_Objective(t *testing.T) {
	m, err := svm.New(identityKernel(4), []int8{1, 1, -1, -1}, svm.Config{C: 2})
	require.NoError(t, err)
	m.Alpha = []float64{1, 0, 1, 0}

	assert.InDelta(t, 2-0.5*2, m.Objective(), 1e-12)
}

// TestModel_Diagnostics checks confusion cells for train and test splits.
func TestModel_Diagnostics(t *testing.T) {
	// 4 training + 2 test exemplars.
	m, err := svm.New(identityKernel(6), []int8{1, 1, -1, -1, 1, -1}, svm.Config{TrainingCount: 4, C: 2})
	require.NoError(t, err)

	// α chosen so that exemplar 1 is misclassified (α=0 ⇒ f=−b<0 with b>0)
	// and test exemplar 4 (f = −b < 0, label +1) is a false negative.
	m.Alpha = []float64{1, 0, 1, 0}
	m.B = 0.1

	d := m.ComputeDiagnostics()

	assert.Equal(t, 1, d.TrainErrCount)
	assert.Equal(t, svm.Confusion{TP: 1, TN: 2, FP: 0, FN: 1}, d.Train)
	assert.Equal(t, 1, d.TestErrCount)
	assert.Equal(t, svm.Confusion{TP: 0, TN: 1, FP: 0, FN: 1}, d.Test)

	// The snapshot accessor returns the same values.
	assert.Equal(t, d, m.Diagnostics())
}

// TestModel_WriteResults verifies the "<prediction>\t<label>" scientific
// notation contract, one line per exemplar.
func TestModel_WriteResults(t *testing.T) {
	m, err := svm.New(identityKernel(4), []int8{1, 1, -1, -1}, svm.Config{C: 2})
	require.NoError(t, err)
	m.Alpha = []float64{1, 0, 1, 0}

	var buf bytes.Buffer
	require.NoError(t, m.WriteResults(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1.000000e+00\t1.000000e+00", lines[0])
	assert.Equal(t, "0.000000e+00\t1.000000e+00", lines[1])
	assert.Equal(t, "-1.000000e+00\t-1.000000e+00", lines[2])
}
