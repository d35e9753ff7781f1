package vector_test

import (
	"fmt"

	"github.com/katalvlaran/svmkit/vector"
)

// ExampleDot shows the merge dot product over two sparse vectors that
// overlap on a single index.
func ExampleDot() {
	a := vector.MustNew([]vector.Feature{{Index: 1, Value: 2}, {Index: 4, Value: 3}}, 1, 1)
	b := vector.MustNew([]vector.Feature{{Index: 2, Value: 5}, {Index: 4, Value: 0.5}}, -1, 1)

	fmt.Println(vector.Dot(a, b))
	fmt.Println(a.TwoNormSq)
	// Output:
	// 1.5
	// 13
}
