// SPDX-License-Identifier: MIT

package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/numerics/gauss"
	"github.com/katalvlaran/numerics/matrix"
)

// ExampleSolve prints the row operations of a 2×2 elimination.
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 3}, {2, 1}})
	res, err := gauss.Solve(a, []float64{5, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range res.Steps {
		fmt.Println(s.Label)
	}
	fmt.Printf("x = [%.1f %.1f]\n", res.X[0], res.X[1])
	// Output:
	// swap L1 <-> L2
	// L2 = L2 - (0.500)*L1
	// x2 = 1
	// x1 = 2
	// x = [2.0 1.0]
}
