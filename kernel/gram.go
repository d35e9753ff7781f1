package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/svmkit/vector"
)

// Gram is the precomputed N×N matrix of pairwise kernel values. It is the
// Evaluator the training pipeline normally uses: the full matrix is built
// once up front and stays read-only for the lifetime of training, which
// keeps custom kernels trivial to plug in (no cache, no re-evaluation).
type Gram struct {
	n int
	m *mat.SymDense
}

// NewGram precomputes the Gram matrix G[i][j] = K(xᵢ, xⱼ) over vecs.
//
// Steps:
//  1. Validate the kernel type and the exemplar list before allocation.
//  2. Allocate the symmetric backing store.
//  3. Fill row blocks concurrently: row i computes entries j ≤ i (lower
//     triangle plus diagonal); symmetry comes from the SymDense storage,
//     so the result is identical to a sequential fill.
//
// The matrix borrows vecs only during construction; the vectors can be
// dropped afterwards unless an OnTheFly evaluator also needs them.
//
// Complexity: O(N²) kernel evaluations, O(N²) memory.
func NewGram(vecs []*vector.FeatureVector, typ Type, p Params) (*Gram, error) {
	// 1) Validation precedes allocation.
	if !typ.valid() {
		return nil, ErrUnknownKernel
	}
	n := len(vecs)
	if n == 0 {
		return nil, ErrNoVectors
	}

	// 2) SymDense stores one triangle; SetSym mirrors by construction.
	m := mat.NewSymDense(n, nil)

	// 3) One task per row; rows are independent, so workers never touch the
	//    same element. Bound the fan-out to the available CPUs.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			a := vecs[i]
			for j := 0; j <= i; j++ {
				d, err := Compute(typ, p, a, vecs[j])
				if err != nil {
					return err
				}
				m.SetSym(i, j, d)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Gram{n: n, m: m}, nil
}

// Eval returns the precomputed K(xᵢ, xⱼ) by plain index lookup.
func (g *Gram) Eval(i, j int) float64 { return g.m.At(i, j) }

// Len returns the number of exemplars covered by the matrix.
func (g *Gram) Len() int { return g.n }

// Matrix exposes the backing symmetric matrix read-only. Useful for
// spectrum inspection and tests; callers must not mutate it during
// training.
func (g *Gram) Matrix() mat.Symmetric { return g.m }

// OnTheFly evaluates the kernel directly against retained feature vectors
// on every call. It trades Gram memory for per-call dot products; the
// solver behaves identically under either Evaluator.
type OnTheFly struct {
	vecs []*vector.FeatureVector
	typ  Type
	p    Params
}

// NewOnTheFly builds a direct-evaluation Evaluator over vecs. The kernel
// type is validated here so Eval itself cannot fail.
func NewOnTheFly(vecs []*vector.FeatureVector, typ Type, p Params) (*OnTheFly, error) {
	if !typ.valid() {
		return nil, ErrUnknownKernel
	}
	if len(vecs) == 0 {
		return nil, ErrNoVectors
	}

	return &OnTheFly{vecs: vecs, typ: typ, p: p}, nil
}

// Eval computes K(xᵢ, xⱼ) from scratch.
func (k *OnTheFly) Eval(i, j int) float64 {
	d, _ := Compute(k.typ, k.p, k.vecs[i], k.vecs[j]) // type validated in NewOnTheFly
	return d
}

// Len returns the number of exemplars covered.
func (k *OnTheFly) Len() int { return len(k.vecs) }
