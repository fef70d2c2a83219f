package poly_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/poly"
)

// ExamplePolynomial_Eval evaluates (x−1)(x−2)(x−3) at x = 4 by Horner's rule.
func ExamplePolynomial_Eval() {
	p := poly.Polynomial{-6, 11, -6, 1} // x³ − 6x² + 11x − 6
	fmt.Println(p.Eval(4))
	// Output: 6
}

// ExampleSolveQuadratic solves x² − 3x + 2 = 0; roots come back ascending.
func ExampleSolveQuadratic() {
	roots, err := poly.SolveQuadratic(1, -3, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(roots)
	// Output: [1 2]
}

// ExampleSolveCubic solves x³ − 6x² + 11x − 6 = 0 analytically.
func ExampleSolveCubic() {
	roots, err := poly.SolveCubic(-6, 11, -6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", roots[0], roots[1], roots[2])
	// Output: 1 2 3
}

// ExamplePolynomial_Roots finds all roots of a cubic via the companion
// matrix; a degree-n polynomial always yields n roots.
func ExamplePolynomial_Roots() {
	p := poly.Polynomial{-6, 11, -6, 1}
	roots, err := p.Roots()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, z := range roots {
		fmt.Printf("%.3f\n", real(z))
	}
	// Output:
	// 1.000
	// 2.000
	// 3.000
}

// ExampleNewDividedDiff interpolates three points and evaluates off-node.
func ExampleNewDividedDiff() {
	// (0,1), (1,3), (2,7) lie on x² + x + 1.
	d, err := poly.NewDividedDiff([]float64{0, 1, 2}, []float64{1, 3, 7})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d.Eval(3))
	// Output: 13
}
