package calc

import (
	"strconv"
	"strings"
)

// ParseError is an error with position information. Every error resulting
// from invalid input implements ParseError.
type ParseError interface {
	error
	// Pos returns the zero-based byte offset at which recognition failed.
	Pos() int
}

// SyntaxError indicates an unexpected character: a missing delimiter, input
// remaining after a complete expression, or a character that cannot begin a
// term.
type SyntaxError struct {
	// Off is the offset of the unexpected character.
	Off int
	// Msg describes what the parser required instead.
	Msg string
}

func (err *SyntaxError) Error() string {
	return err.Msg
}

func (err *SyntaxError) Pos() int {
	return err.Off
}

// UnknownSymbolError indicates an identifier that is not in the constant
// table and is not followed by an argument list.
type UnknownSymbolError struct {
	// Off is the offset reached after reading the symbol.
	Off int
	// Name is the symbol that failed to resolve.
	Name string
}

func (err *UnknownSymbolError) Error() string {
	return "unknown symbol " + strconv.Quote(err.Name)
}

func (err *UnknownSymbolError) Pos() int {
	return err.Off
}

// UnknownFuncError indicates an identifier followed by an argument list
// that is not in the function table.
type UnknownFuncError struct {
	// Off is the offset reached after reading the symbol.
	Off int
	// Name is the symbol that failed to resolve.
	Name string
}

func (err *UnknownFuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name)
}

func (err *UnknownFuncError) Pos() int {
	return err.Off
}

// NumberError indicates a numeric literal that could not be converted: an
// exponent marker with no following digit, or an accumulated literal with
// no digit in its mantissa.
type NumberError struct {
	// Off is the offset of the error. For a conversion failure this is the
	// start of the literal; for a missing exponent digit it is the offset
	// where the digit was required.
	Off int
	// Text is the literal text consumed so far.
	Text string
	// Exponent is whether the error is a missing exponent digit.
	Exponent bool
}

func (err *NumberError) Error() string {
	if err.Exponent {
		return "expected exponent in floating point constant"
	}
	return "invalid float " + strconv.Quote(err.Text)
}

func (err *NumberError) Pos() int {
	return err.Off
}

// Report renders err the way the interactive calculator prints it: a caret
// line locating the failure, then the offset and message. The result has no
// trailing newline.
func Report(err ParseError) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", err.Pos()))
	b.WriteString("^\n")
	b.WriteString("error (position = ")
	b.WriteString(strconv.Itoa(err.Pos()))
	b.WriteString("): ")
	b.WriteString(err.Error())
	return b.String()
}

var (
	_ ParseError = (*SyntaxError)(nil)
	_ ParseError = (*UnknownSymbolError)(nil)
	_ ParseError = (*UnknownFuncError)(nil)
	_ ParseError = (*NumberError)(nil)
)
