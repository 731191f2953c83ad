package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/invert/matrix"
)

// T is a zero-copy view: same buffer, opposite storage order.
func ExampleDense_T() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	t := m.T()
	fmt.Println(t.Rows(), t.Cols(), t.Order())
	fmt.Print(t)
	// Output:
	// 3 2 ColMajor
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

func ExampleCovariance() {
	X, _ := matrix.FromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
	})
	cov, means, _ := matrix.Covariance(X)
	fmt.Println(means)
	fmt.Print(cov)
	// Output:
	// [2 4]
	// [1, 2]
	// [2, 4]
}
