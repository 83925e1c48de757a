package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/calclab/calc"
)

const prompt = ">> "

// cases is the demonstration table: inputs paired with the value Evaluate
// must return, compared by exact equality.
var cases = []struct {
	input string
	want  float64
}{
	// constants
	{"1", 1},
	{"1.234", 1.234},
	{".1", 0.1},
	{"-2", -2},
	{"-.1", -0.1},
	{"1e9", 1e9},
	{"2e-8", 2e-8},
	{"3e+7", 3e+7},
	{"456.789e+5", 456.789e+5},

	// symbols
	{"e", math.E},
	{"pi", math.Pi},

	// addition
	{"1+2", 3},
	{"3+e", 3 + math.E},

	// subtraction
	{"4-5", -1},

	// multiplication
	{"2*3", 6},

	// parenthesized expressions
	{"(3+4)", 7},
	{"(3+4)*(2+3)", 35},

	// addition combined with a unary-looking negative literal
	{"1+-2", -1},

	// white space
	{"\t 1  + ( 2 * 10 )    ", 21},

	// sqrt
	{"sqrt(4)", 2},
	{"sqrt((3+4)*(2+3))", math.Sqrt(35)},
	{"sqrt(1 + 2 )", math.Sqrt(3)},

	// trig
	{"cos(pi)", math.Cos(math.Pi)},
	{"sin(0)", 0},
}

// demo evaluates the demonstration table, printing one line per case.
// It reports whether every case passed.
func demo(out io.Writer) bool {
	ok := true
	for _, c := range cases {
		fmt.Fprintf(out, "%q ==> ", c.input)
		got, err := calc.EvalString(c.input)
		switch {
		case err != nil:
			fmt.Fprintf(out, "FAILED: %v\n", err)
			ok = false
		case got != c.want:
			fmt.Fprintf(out, "%g FAILED: expected %g\n", got, c.want)
			ok = false
		default:
			fmt.Fprintf(out, "%g OK\n", got)
		}
	}
	return ok
}

// interact evaluates in line by line, printing each result or a rendered
// parse error, until a blank line or the end of the input. The evaluator
// has no defined behavior for blank input, so blank lines never reach it.
func interact(in io.Reader, out io.Writer, tty bool) error {
	sc := bufio.NewScanner(in)
	for {
		if tty {
			fmt.Fprint(out, prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}
		v, err := calc.EvalString(line)
		if err != nil {
			report(out, err, tty)
			continue
		}
		fmt.Fprintf(out, "%g\n", v)
	}
}

// report prints a rendered parse error. On a terminal the report is
// indented by the prompt width so the caret lands under the echoed input.
func report(out io.Writer, err error, tty bool) {
	pe, ok := err.(calc.ParseError)
	if !ok {
		fmt.Fprintln(out, err)
		return
	}
	indent := ""
	if tty {
		indent = strings.Repeat(" ", len(prompt))
	}
	for _, line := range strings.Split(calc.Report(pe), "\n") {
		fmt.Fprintln(out, indent+line)
	}
}

func main() {
	log.SetFlags(0)
	t := flag.Bool("t", false, "run the demonstration cases and exit")
	flag.Parse()

	if *t {
		if !demo(os.Stdout) {
			os.Exit(1)
		}
		return
	}

	// Arguments are expressions; evaluate them and exit.
	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			v, err := calc.EvalString(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 1
				continue
			}
			fmt.Printf("%g\n", v)
		}
		os.Exit(code)
	}

	tty := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if tty {
		fmt.Println("Type an expression and press return to evaluate.")
		fmt.Println("Enter an empty line to exit.")
	}
	if err := interact(os.Stdin, os.Stdout, tty); err != nil {
		log.Fatal(err)
	}
}
