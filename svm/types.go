// Package svm defines the model state container shared by the SMO drivers:
// Lagrange multipliers, labels, penalties, the kernel callback, and the
// diagnostics counters, together with pre-training validation.
package svm

import (
	"errors"

	"github.com/katalvlaran/svmkit/kernel"
)

// DefaultC is the misclassification penalty used when the caller supplies
// none.
const DefaultC = 1.0

// DefaultMaxIter bounds the outer training loop when the caller supplies no
// cap. MaxIter < 1 disables the bound entirely.
const DefaultMaxIter = 10000

// Sentinel errors returned by Model.Validate. Each names one invalid-input
// condition; all of them are checked before any training allocation.
var (
	// ErrTooFewExemplars indicates fewer than two training exemplars.
	ErrTooFewExemplars = errors.New("svm: need at least two training exemplars")

	// ErrBadTestCount indicates a negative test-exemplar count.
	ErrBadTestCount = errors.New("svm: negative test count")

	// ErrBadLabel indicates a label outside {-1, +1}.
	ErrBadLabel = errors.New("svm: label must be -1 or +1")

	// ErrMissingClass indicates training data without both classes.
	ErrMissingClass = errors.New("svm: training data must contain positive and negative examples")

	// ErrNegativePenalty indicates CPos or CNeg < 0.
	ErrNegativePenalty = errors.New("svm: penalty C must be non-negative")

	// ErrNilKernel indicates a missing kernel callback.
	ErrNilKernel = errors.New("svm: kernel evaluator is nil")

	// ErrCountMismatch indicates that the kernel evaluator does not cover
	// exactly the training plus test exemplars.
	ErrCountMismatch = errors.New("svm: kernel evaluator size does not match exemplar count")
)

// Confusion holds the four confusion-matrix cells for one data split.
type Confusion struct {
	TP, TN, FP, FN int
}

// Diagnostics aggregates prediction quality over the training and test
// splits. ComputeDiagnostics refreshes it from the current α and b.
type Diagnostics struct {
	TrainErrCount int
	TestErrCount  int
	Train         Confusion
	Test          Confusion
}

// Model is the SVM training state. The first TrainingCount exemplars are
// optimized; any following TestCount exemplars never receive α and exist
// only for evaluation (they are appended to the same kernel index space).
//
// The model uniquely owns Alpha; the kernel evaluator is shared read-only
// for the lifetime of training. The per-example solver cache (error cache
// or gradient) is owned by the driver, not stored here: the two training
// modes never both exist.
type Model struct {
	// Kernel returns K(xᵢ, xⱼ) by index; typically a *kernel.Gram.
	Kernel kernel.Evaluator

	// Labels holds +1/-1 for all TrainingCount+TestCount exemplars.
	Labels []int8

	TrainingCount int
	TestCount     int

	// CPos and CNeg are the per-class misclassification penalties; a
	// single-penalty configuration sets them equal.
	CPos float64
	CNeg float64

	// MaxIter caps the outer training loop; < 1 means unbounded.
	MaxIter int

	// Alpha and B are the learned parameters. Alpha is allocated by the
	// trainer (length TrainingCount) and satisfies 0 ≤ Alpha[i] ≤ C(i) at
	// every observable step.
	Alpha []float64
	B     float64

	diag Diagnostics
}

// Config collects the scalar knobs for New. Zero values mean defaults:
// C = DefaultC, MaxIter = DefaultMaxIter, CPos/CNeg fall back to C.
type Config struct {
	TrainingCount int
	C             float64
	CPos          float64
	CNeg          float64
	MaxIter       int
}

// New assembles a Model over a kernel evaluator and the label slice, and
// validates it.
//
// Steps:
//  1. Resolve Config defaults (C, per-class penalties, MaxIter).
//  2. Populate the Model; TestCount is derived from len(labels).
//  3. Validate before returning — nothing is allocated for training yet.
func New(k kernel.Evaluator, labels []int8, cfg Config) (*Model, error) {
	// 1) Defaults: a zero Config trains with C=1 on all labels.
	c := cfg.C
	if c == 0 {
		c = DefaultC
	}
	cpos, cneg := cfg.CPos, cfg.CNeg
	if cpos == 0 {
		cpos = c
	}
	if cneg == 0 {
		cneg = c
	}
	maxIter := cfg.MaxIter
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	trainingCount := cfg.TrainingCount
	if trainingCount == 0 {
		trainingCount = len(labels)
	}

	// 2) Assemble.
	m := &Model{
		Kernel:        k,
		Labels:        labels,
		TrainingCount: trainingCount,
		TestCount:     len(labels) - trainingCount,
		CPos:          cpos,
		CNeg:          cneg,
		MaxIter:       maxIter,
	}

	// 3) Validate up front; Train re-validates defensively.
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// C returns the penalty for exemplar i: CPos for positive labels, CNeg for
// negative ones.
func (m *Model) C(i int) float64 {
	if m.Labels[i] > 0 {
		return m.CPos
	}

	return m.CNeg
}

// Validate checks every invalid-input condition. It allocates nothing and
// is safe to call repeatedly.
func (m *Model) Validate() error {
	if m.Kernel == nil {
		return ErrNilKernel
	}
	if m.TrainingCount < 2 {
		return ErrTooFewExemplars
	}
	if m.TestCount < 0 {
		return ErrBadTestCount
	}
	total := m.TrainingCount + m.TestCount
	if len(m.Labels) != total || m.Kernel.Len() != total {
		return ErrCountMismatch
	}
	for _, y := range m.Labels {
		if y != 1 && y != -1 {
			return ErrBadLabel
		}
	}
	pos := 0
	for _, y := range m.Labels[:m.TrainingCount] {
		if y == 1 {
			pos++
		}
	}
	if pos == 0 || pos == m.TrainingCount {
		return ErrMissingClass
	}
	if m.CPos < 0 || m.CNeg < 0 {
		return ErrNegativePenalty
	}

	return nil
}

// Diagnostics returns a snapshot of the last ComputeDiagnostics run.
func (m *Model) Diagnostics() Diagnostics { return m.diag }
