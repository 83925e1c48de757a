package calc

// Option configures the symbol table of a new Evaluator.
type Option interface {
	option(*symbols)
}

type (
	constopt struct {
		name string
		val  float64
	}
	constsopt map[string]float64
	funcopt   struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
)

func (o constopt) option(s *symbols) {
	s.consts[o.name] = o.val
}

func (o constsopt) option(s *symbols) {
	for k, v := range o {
		s.consts[k] = v
	}
}

func (o funcopt) option(s *symbols) {
	if o.fn == nil {
		delete(s.funcs, o.name)
		return
	}
	s.funcs[o.name] = o.fn
}

func (o funcsopt) option(s *symbols) {
	for k, v := range o {
		funcopt{k, v}.option(s)
	}
}

// Constant defines a named constant, overriding any built-in of the same
// name.
func Constant(name string, val float64) Option {
	return constopt{name, val}
}

// Constants defines any number of named constants.
func Constants(vals map[string]float64) Option {
	return constsopt(vals)
}

// Function defines a named unary function, overriding any built-in of the
// same name. Passing a nil fn removes the function from the table.
func Function(name string, fn Func) Option {
	return funcopt{name, fn}
}

// Functions defines any number of named unary functions. A nil function
// removes its name from the table.
func Functions(fns map[string]Func) Option {
	return funcsopt(fns)
}
