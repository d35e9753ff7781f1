// Package svmkit trains binary soft-margin Support Vector Machines with
// Sequential Minimal Optimization in pure Go.
//
// 🚀 What is svmkit?
//
//	A small, dependency-light toolkit that takes sparse labeled feature
//	vectors and a kernel, and produces Lagrange multipliers α and a bias b
//	for the decision function f(x) = Σᵢ αᵢ yᵢ K(xᵢ, x) − b:
//
//	  • Two SMO drivers: Platt's 1998 heuristic selection and the
//	    Fan–Chen–Lin 2005 second-order working-set selection
//	  • Four kernels: linear, polynomial, RBF, sigmoid
//	  • Full Gram-matrix precomputation, so custom kernels stay trivial
//	  • Per-class penalties (CPos / CNeg) for imbalanced data
//
// ✨ Why svmkit?
//
//   - Deterministic    — randomness is an explicit, seedable dependency
//   - Well-behaved     — indefinite kernels are absorbed, never crash
//   - Inspectable      — confusion-matrix diagnostics and support counts
//     come with every trained model
//
// Everything is organized under five subpackages:
//
//	vector/   — sparse feature vectors & the merge dot product
//	kernel/   — kernel functions, Gram matrix, evaluator abstraction
//	svm/      — model state, validation, decision function, diagnostics
//	smo/      — the two SMO drivers and the shared two-variable update
//	dataset/  — libsvm-format input parsing
//
// plus cmd/svmtrain, a flag-driven trainer binary.
//
// Quick start:
//
//	vecs, _ := dataset.LoadFile("train.txt")
//	gram, _ := kernel.NewGram(vecs, kernel.RBF, kernel.Params{RBFGamma: 1})
//	labels := make([]int8, len(vecs))
//	for i, v := range vecs { labels[i] = v.Label }
//	m, _ := svm.New(gram, labels, svm.Config{C: 10})
//	res, _ := smo.Train(m, smo.Fan, nil)
//	fmt.Println(m.Diagnostics().TrainErrCount, res.Iterations)
package svmkit
