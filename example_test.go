package calc_test

import (
	"fmt"
	"math"

	"github.com/calclab/calc"
)

func ExampleEvalString() {
	v, _ := calc.EvalString("(3+4)*(2+3)")
	fmt.Println(v)
	// Output: 35
}

func ExampleConstant() {
	v, _ := calc.EvalString("tau/2", calc.Constant("tau", 2*math.Pi))
	fmt.Println(v)
	// Output: 3.141592653589793
}

func ExampleFunction() {
	cube := func(x float64) float64 { return x * x * x }
	v, _ := calc.EvalString("cube(3)", calc.Function("cube", cube))
	fmt.Println(v)
	// Output: 27
}
