package calc

import "math"

// Func is a unary function callable from an expression.
type Func func(float64) float64

// symbols is the table of named constants and functions consulted by the
// identifier production. It is populated once when an Evaluator is created
// and never written afterward, so one table may back any number of
// sequential evaluations without locking.
type symbols struct {
	consts map[string]float64
	funcs  map[string]Func
}

// defaultSymbols returns a table holding the built-in constants and
// functions.
func defaultSymbols() *symbols {
	return &symbols{
		consts: map[string]float64{
			"e":  math.E,
			"pi": math.Pi,
		},
		funcs: map[string]Func{
			"cos":  math.Cos,
			"sin":  math.Sin,
			"sqrt": math.Sqrt,
		},
	}
}
