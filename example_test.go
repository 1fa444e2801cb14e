package rootfind_test

import (
	"fmt"

	"github.com/katalvlaran/rootfind"
)

// ExampleSolve locates the real root of x³−x−2 with the Brentq refiner.
func ExampleSolve() {
	f := func(x float64) float64 { return x*x*x - x - 2 }

	res, err := rootfind.Solve(rootfind.Brentq, f, 1, 2,
		rootfind.WithFTol(1e-12))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("root: %.4f\n", res.XZero)
	// Output:
	// root: 1.5214
}

// ExampleSolveNamed picks the method by its string identifier, letter case
// notwithstanding.
func ExampleSolveNamed() {
	f := func(x float64) float64 { return x*x*x - x - 2 }

	res, err := rootfind.SolveNamed("TOMS748", f, 1, 2,
		rootfind.WithFTol(1e-12))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("root: %.4f (%s)\n", res.XZero, res.Status)
	// Output:
	// root: 1.5214 (success)
}

// ExampleParseMethod accepts the hyphenated alias of anderson_bjorck.
func ExampleParseMethod() {
	m, err := rootfind.ParseMethod("Anderson-Bjorck")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// anderson_bjorck
}
