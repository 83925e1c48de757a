package calc

import "strconv"

// number scans the longest prefix of the source that can form a floating
// point literal and converts it. The grammar admits an optional sign, an
// optional integer part, an optional fraction, and an optional exponent,
// but the mantissa must contain at least one digit somewhere; strconv
// enforces that when the text is converted.
func (e *Evaluator) number() (float64, error) {
	e.skipSpace()
	start := e.pos

	// Optional leading sign.
	if c := e.peek(); c == '+' || c == '-' {
		e.next()
	}
	// Mantissa digits left of the decimal point.
	for isDigit(e.peek()) {
		e.next()
	}
	// Optional decimal point and digits to its right.
	if e.peek() == '.' {
		e.next()
		for isDigit(e.peek()) {
			e.next()
		}
	}
	// Optional exponent. Once the marker is consumed, at least one digit
	// must follow the optional sign.
	if c := e.peek(); c == 'e' || c == 'E' {
		e.next()
		if c := e.peek(); c == '+' || c == '-' {
			e.next()
		}
		if !isDigit(e.peek()) {
			return 0, &NumberError{Off: e.pos, Text: e.src[start:e.pos], Exponent: true}
		}
		for isDigit(e.peek()) {
			e.next()
		}
	}

	text := e.src[start:e.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberError{Off: start, Text: text}
	}
	return v, nil
}

// symbol reads an identifier: one alphabetic character followed by any run
// of alphanumerics. term dispatches here only on an alphabetic character,
// but the check stands on its own so symbol is safe to call anywhere.
func (e *Evaluator) symbol() (string, error) {
	e.skipSpace()
	if !isAlpha(e.peek()) {
		return "", &SyntaxError{Off: e.pos, Msg: "expected alphabetic character at beginning of symbol"}
	}
	start := e.pos
	for isAlnum(e.peek()) {
		e.next()
	}
	return e.src[start:e.pos], nil
}
