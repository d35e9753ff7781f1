// Package svm holds the training-state container shared by both SMO
// drivers and everything that reads a trained model: the decision
// function, the dual objective, support-vector counts, confusion-matrix
// diagnostics, and result output.
//
// 🚀 What is in a Model?
//
//	α (Lagrange multipliers), the bias b, per-exemplar labels, per-class
//	penalties CPos/CNeg, the iteration cap, and the kernel callback the
//	solver reads K(i,j) through. Test exemplars are appended after the
//	training block in the same kernel index space; they never receive α
//	and exist only for evaluation.
//
// ✨ Contract:
//
//   - 0 ≤ α[i] ≤ C(i) at every observable step of training
//   - Σ yᵢ α[i] = 0 is preserved by every two-variable update
//   - Validate() checks every invalid-input condition before the trainer
//     allocates anything
//
// ⚙️ Usage:
//
//	m, err := svm.New(gram, labels, svm.Config{TrainingCount: n, C: 1})
//	if err != nil { ... }
//	res, err := smo.Train(m, smo.Platt, nil)
//	d := m.ComputeDiagnostics()
//
// The per-example solver caches (Platt's error cache, Fan's gradient) are
// deliberately not part of the Model: each driver owns exactly one of
// them for the duration of training.
package svm
