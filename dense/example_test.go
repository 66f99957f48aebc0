package dense_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
)

// ExampleMatMat multiplies a row-major matrix by a column-major one.
func ExampleMatMat() {
	a := []float64{1, 2, 3, 4}                                                      // [[1 2] [3 4]] row-major
	b := dense.Reorder(2, 2, []float64{0, 1, 1, 0}, dense.RowMajor, dense.ColMajor) // swap
	c := dense.MatMat(2, 2, a, dense.RowMajor, 2, 2, b, dense.ColMajor, dense.RowMajor)
	fmt.Println(dense.Format(2, 2, c, dense.RowMajor))
	// Output:
	// 2 1
	// 4 3
}

// ExampleIndex shows the two address formulas.
func ExampleIndex() {
	fmt.Println(dense.Index(3, 4, 1, 2, dense.RowMajor), dense.Index(3, 4, 1, 2, dense.ColMajor))
	// Output: 6 7
}
