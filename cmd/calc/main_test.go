package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDemo(t *testing.T) {
	var b strings.Builder
	if !demo(&b) {
		t.Error("demonstration cases failed:\n" + b.String())
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if !strings.HasSuffix(line, " OK") {
			t.Errorf("case did not pass: %s", line)
		}
	}
}

func TestInteract(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tty  bool
		want string
	}{
		{
			"results", "1+2\n(3+4)*(2+3)\n", false,
			"3\n35\n",
		},
		{
			"error", "foo\n1+2\n", false,
			"   ^\nerror (position = 3): unknown symbol \"foo\"\n3\n",
		},
		{
			"blank-exit", "1+2\n\n4-5\n", false,
			"3\n",
		},
		{
			"whitespace-exit", "1+2\n \t \n4-5\n", false,
			"3\n",
		},
		{
			"tty", "2*3\n\n", true,
			">> 6\n>> ",
		},
		{
			"tty-error", "(1+2\n\n", true,
			">>        ^\n   error (position = 4): expected ')'\n>> ",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			if err := interact(strings.NewReader(c.in), &b, c.tty); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, b.String()); diff != "" {
				t.Errorf("wrong transcript (-want +got):\n%s", diff)
			}
		})
	}
}
