// Package kernel provides the four closed-form kernels over sparse feature
// vectors and the Evaluator abstraction that feeds kernel values to the
// SMO solver by exemplar index.
//
// 🚀 What is the kernel layer?
//
//	The solver never touches feature vectors. It consumes a single
//	operation K(i, j) → ℝ through the Evaluator interface, with two
//	concrete shapes:
//	  • Gram     – the full N×N matrix precomputed up front (the default;
//	               the whole design assumes it fits in memory, which keeps
//	               custom kernels simple)
//	  • OnTheFly – direct evaluation per call, for tests and small N
//
// ✨ Kernels:
//
//   - Linear  : ⟨a, b⟩
//   - Poly    : (c₁·⟨a,b⟩ + c₀)^d
//   - RBF     : exp(-γ·‖a-b‖²), using the norms cached on the vectors
//   - Sigmoid : tanh(c₁·⟨a,b⟩ + c₀)
//
// Poly and Sigmoid may produce an indefinite Gram matrix; the solver is
// built to tolerate that (curvature flooring in the two-variable step).
//
// ⚙️ Usage:
//
//	gram, err := kernel.NewGram(vecs, kernel.RBF, kernel.Params{RBFGamma: 0.5})
//	if err != nil { ... }
//	k := gram.Eval(i, j)
//
// Performance: NewGram is O(N²) kernel evaluations; rows are filled
// concurrently and the matrix is read-only afterwards.
package kernel
