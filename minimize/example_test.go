// SPDX-License-Identifier: MIT

package minimize_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/minimize"
)

// ExampleMinimize finds the minimum of a shifted paraboloid without
// derivatives using the downhill simplex.
func ExampleMinimize() {
	bowl := minimize.Problem{
		F: func(x []float64) float64 {
			dx, dy := x[0]-1, x[1]-2

			return 10*dx*dx + 20*dy*dy + 30
		},
	}

	opts := minimize.DefaultOptions() // NelderMead
	res, err := minimize.Minimize(bowl, []float64{5, 7}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=(%.3f, %.3f) f=%.3f converged=%v\n", res.X[0], res.X[1], res.F, res.Converged)
	// Output: x=(1.000, 2.000) f=30.000 converged=true
}

// ExampleMinimize_gradient minimizes the Rosenbrock function with the
// Polak–Ribière conjugate gradient.
func ExampleMinimize_gradient() {
	rosen := minimize.Problem{
		F: func(x []float64) float64 {
			a := x[1] - x[0]*x[0]
			b := 1 - x[0]

			return 100*a*a + b*b
		},
		Grad: func(x, g []float64) {
			a := x[1] - x[0]*x[0]
			g[0] = -400*x[0]*a - 2*(1-x[0])
			g[1] = 200 * a
		},
	}

	opts := minimize.DefaultOptions()
	opts.Algo = minimize.ConjugatePR
	opts.MaxIterations = 20000

	res, err := minimize.Minimize(rosen, []float64{-1.2, 1}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=(%.2f, %.2f) converged=%v\n", res.X[0], res.X[1], res.Converged)
	// Output: x=(1.00, 1.00) converged=true
}

// ExampleNew drives the stepwise API with a custom stopping rule.
func ExampleNew() {
	bowl := minimize.Problem{
		F: func(x []float64) float64 { return (x[0] - 3) * (x[0] - 3) },
	}

	m, err := minimize.New(bowl, []float64{0}, minimize.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 200 && !m.Converged(); i++ {
		if err = m.Iterate(); err != nil {
			fmt.Println("error:", err)

			return
		}
	}
	fmt.Printf("x=%.4f\n", m.X()[0])
	// Output: x=3.0000
}
