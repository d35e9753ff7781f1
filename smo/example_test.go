package smo_test

import (
	"fmt"

	"github.com/katalvlaran/svmkit/kernel"
	"github.com/katalvlaran/svmkit/smo"
	"github.com/katalvlaran/svmkit/svm"
	"github.com/katalvlaran/svmkit/vector"
)

// ExampleTrain trains a tiny linearly separable problem with the Fan
// driver and reads the diagnostics off the model.
func ExampleTrain() {
	vecs := []*vector.FeatureVector{
		vector.MustNew([]vector.Feature{{Index: 1, Value: 1}, {Index: 2, Value: 1}}, 1, 1),
		vector.MustNew([]vector.Feature{{Index: 1, Value: 2}, {Index: 2, Value: 2}}, 1, 1),
		vector.MustNew([]vector.Feature{{Index: 1, Value: -1}, {Index: 2, Value: -1}}, -1, 1),
		vector.MustNew([]vector.Feature{{Index: 1, Value: -2}, {Index: 2, Value: -2}}, -1, 1),
	}
	gram, err := kernel.NewGram(vecs, kernel.Linear, kernel.DefaultParams())
	if err != nil {
		fmt.Println(err)
		return
	}

	m, err := svm.New(gram, []int8{1, 1, -1, -1}, svm.Config{C: 1, MaxIter: 1000})
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := smo.Train(m, smo.Fan, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("converged:", !res.CapReached)
	fmt.Println("training errors:", m.Diagnostics().TrainErrCount)
	// Output:
	// converged: true
	// training errors: 0
}
