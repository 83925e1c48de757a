package calc

import "testing"

func TestScanner(t *testing.T) {
	s := scanner{src: "ab"}
	if c := s.peek(); c != 'a' {
		t.Errorf("peek: want 'a', got %q", c)
	}
	if s.pos != 0 {
		t.Errorf("peek moved the cursor to %d", s.pos)
	}
	if c := s.next(); c != 'a' {
		t.Errorf("next: want 'a', got %q", c)
	}
	if c := s.next(); c != 'b' {
		t.Errorf("next: want 'b', got %q", c)
	}
	if c := s.peek(); c != eof {
		t.Errorf("peek at end: want eof, got %q", c)
	}
	if c := s.next(); c != eof {
		t.Errorf("next at end: want eof, got %q", c)
	}
	if s.pos != 2 {
		t.Errorf("next at end moved the cursor to %d", s.pos)
	}
}

func TestSkipSpace(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"", 0},
		{"x", 0},
		{" \t\r\n x", 5},
		{"   ", 3},
		{"1 + 2", 0},
	}
	for _, c := range cases {
		s := scanner{src: c.src}
		s.skipSpace()
		if s.pos != c.pos {
			t.Errorf("skipSpace on %q: want cursor %d, got %d", c.src, c.pos, s.pos)
		}
	}
}

func TestExpect(t *testing.T) {
	s := scanner{src: "()"}
	if err := s.expect('('); err != nil {
		t.Errorf("expect '(' on %q: %v", s.src, err)
	}
	if s.pos != 1 {
		t.Errorf("expect left the cursor at %d", s.pos)
	}
	err := s.expect('(')
	if err == nil {
		t.Fatal("expect '(' at ')' gave no error")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expect gave %#v, not *SyntaxError", err)
	}
	if se.Off != 1 {
		t.Errorf("error offset: want 1, got %d", se.Off)
	}
	if want := "expected '('"; se.Msg != want {
		t.Errorf("error message: want %q, got %q", want, se.Msg)
	}
	if s.pos != 1 {
		t.Errorf("failed expect moved the cursor to %d", s.pos)
	}
}

func TestEvaluateConsumesInput(t *testing.T) {
	// On success the cursor is exactly at the end of the source, trailing
	// whitespace included.
	srcs := []string{
		"1",
		"1 + 2 ",
		"sqrt( 4 )  ",
		"(3+4)*(2+3)",
		"\t 1  + ( 2 * 10 )    ",
	}
	for _, src := range srcs {
		e := New(src)
		if _, err := e.Evaluate(); err != nil {
			t.Errorf("%q failed to evaluate: %v", src, err)
			continue
		}
		if e.pos != len(src) {
			t.Errorf("%q: cursor at %d of %d after success", src, e.pos, len(src))
		}
	}
}
