package calc

// eof is the sentinel returned by peek and next once the cursor has reached
// the end of the source.
const eof = byte(0)

// scanner is a cursor over an immutable source string. The cursor is a
// zero-based byte offset and never moves backward during one evaluation.
type scanner struct {
	src string
	pos int
}

// peek returns the byte at the cursor without advancing, or eof if the
// cursor is at or past the end of the source.
func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return eof
	}
	return s.src[s.pos]
}

// next returns the byte at the cursor and advances past it. At the end of
// the source it returns eof and leaves the cursor in place.
func (s *scanner) next() byte {
	c := s.peek()
	if c != eof {
		s.pos++
	}
	return c
}

// skipSpace advances the cursor past any run of spaces, tabs, carriage
// returns, and newlines.
func (s *scanner) skipSpace() {
	for isSpace(s.peek()) {
		s.pos++
	}
}

// expect advances past the next byte if it equals c. Otherwise the cursor
// stays put and the result is a SyntaxError naming c.
func (s *scanner) expect(c byte) error {
	if s.peek() != c {
		return &SyntaxError{Off: s.pos, Msg: "expected '" + string(c) + "'"}
	}
	s.pos++
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// startsNumber reports whether c can begin a numeric literal.
func startsNumber(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}
