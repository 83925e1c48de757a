package calc

// EXPRESSION = SUM
// SUM        = PRODUCT [ ('+' | '-') PRODUCT ]
// PRODUCT    = TERM [ ('*' | '/') SUM ]
// TERM       = '(' SUM ')' | CONSTANT | IDENTIFIER
// IDENTIFIER = SYMBOL | SYMBOL '(' SUM ')'
// CONSTANT   = ['+' | '-'] DIGIT* ['.' DIGIT*] [('e' | 'E') ['+' | '-'] DIGIT+]
// SYMBOL     = ALPHA (ALPHA | DIGIT)*
//
// PRODUCT recurses into SUM for its right operand, and SUM consumes at most
// one operator, so chained operators group to the right: "2*3+4" is
// 2*(3+4). Whitespace is allowed between any two tokens.

// Evaluator computes the value of a single arithmetic expression. It owns
// the source text and the scan cursor, so it is not safe for concurrent
// use; create one per goroutine, or reuse one for sequential evaluations.
type Evaluator struct {
	scanner
	syms *symbols
}

// New creates an Evaluator for src. The symbol table starts with the
// built-in constants (e, pi) and functions (sin, cos, sqrt); options add to
// or override it. The table is fixed once New returns.
func New(src string, opts ...Option) *Evaluator {
	syms := defaultSymbols()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(syms)
	}
	return &Evaluator{scanner: scanner{src: src}, syms: syms}
}

// Evaluate parses src and computes its value. The entire source must form
// one expression; characters remaining after it are a SyntaxError. Any
// error implements ParseError and carries the offset at which recognition
// failed. Evaluate rewinds the cursor first, so repeated calls on one
// Evaluator give identical results.
func (e *Evaluator) Evaluate() (float64, error) {
	e.pos = 0
	return e.expression()
}

// EvalString is a shortcut to evaluate a single expression.
func EvalString(src string, opts ...Option) (float64, error) {
	return New(src, opts...).Evaluate()
}

// expression evaluates a sum, then requires the cursor to be at the end of
// the source once trailing whitespace is skipped. This is the only
// production that enforces full-input consumption.
func (e *Evaluator) expression() (float64, error) {
	v, err := e.sum()
	if err != nil {
		return 0, err
	}
	e.skipSpace()
	if e.peek() != eof {
		return 0, &SyntaxError{Off: e.pos, Msg: "unexpected input after expression"}
	}
	return v, nil
}

// sum evaluates a product, then at most one '+' or '-' whose right operand
// is another product. Chains of additions arrive here again only through
// product's right-recursion.
func (e *Evaluator) sum() (float64, error) {
	left, err := e.product()
	if err != nil {
		return 0, err
	}
	e.skipSpace()
	switch e.peek() {
	case '+':
		e.next()
		right, err := e.product()
		if err != nil {
			return 0, err
		}
		return left + right, nil
	case '-':
		e.next()
		right, err := e.product()
		if err != nil {
			return 0, err
		}
		return left - right, nil
	}
	return left, nil
}

// product evaluates a term, then at most one '*' or '/' whose right operand
// recurses into sum, not product. Division by zero is not a parse error;
// the result is whatever float64 division produces.
func (e *Evaluator) product() (float64, error) {
	left, err := e.term()
	if err != nil {
		return 0, err
	}
	e.skipSpace()
	switch e.peek() {
	case '*':
		e.next()
		right, err := e.sum()
		if err != nil {
			return 0, err
		}
		return left * right, nil
	case '/':
		e.next()
		right, err := e.sum()
		if err != nil {
			return 0, err
		}
		return left / right, nil
	}
	return left, nil
}

// term dispatches on the next significant character: a parenthesized sum, a
// numeric literal, or an identifier.
func (e *Evaluator) term() (float64, error) {
	e.skipSpace()
	switch c := e.peek(); {
	case c == '(':
		e.next()
		v, err := e.sum()
		if err != nil {
			return 0, err
		}
		e.skipSpace()
		if err := e.expect(')'); err != nil {
			return 0, err
		}
		return v, nil
	case startsNumber(c):
		return e.number()
	case isAlpha(c):
		return e.identifier()
	default:
		return 0, &SyntaxError{Off: e.pos, Msg: "expected a number, symbol, or parenthesized expression"}
	}
}

// identifier reads a symbol and resolves it. A symbol followed by '(' is a
// function applied to a single sum; anything else is a constant lookup.
func (e *Evaluator) identifier() (float64, error) {
	name, err := e.symbol()
	if err != nil {
		return 0, err
	}
	e.skipSpace()
	if e.peek() == '(' {
		fn := e.syms.funcs[name]
		if fn == nil {
			return 0, &UnknownFuncError{Off: e.pos, Name: name}
		}
		e.next()
		arg, err := e.sum()
		if err != nil {
			return 0, err
		}
		if err := e.expect(')'); err != nil {
			return 0, err
		}
		return fn(arg), nil
	}
	v, ok := e.syms.consts[name]
	if !ok {
		return 0, &UnknownSymbolError{Off: e.pos, Name: name}
	}
	return v, nil
}
