package kernel_test

import (
	"testing"

	"github.com/katalvlaran/svmkit/kernel"
	"github.com/katalvlaran/svmkit/vector"
)

// synthVectors builds n sparse vectors with nnz entries each.
func synthVectors(n, nnz int) []*vector.FeatureVector {
	vecs := make([]*vector.FeatureVector, n)
	for i := 0; i < n; i++ {
		feats := make([]vector.Feature, nnz)
		for j := 0; j < nnz; j++ {
			feats[j] = vector.Feature{Index: 1 + j*(1+i%3), Value: float64(i+j) / float64(n)}
		}
		label := int8(1)
		if i%2 == 1 {
			label = -1
		}
		vecs[i] = vector.MustNew(feats, label, 1)
	}

	return vecs
}

func BenchmarkNewGram_RBF(b *testing.B) {
	vecs := synthVectors(200, 32)
	p := kernel.Params{RBFGamma: 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kernel.NewGram(vecs, kernel.RBF, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDot_Sparse(b *testing.B) {
	vecs := synthVectors(2, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vector.Dot(vecs[0], vecs[1])
	}
}
