// Package calc evaluates arithmetic expressions in a single pass.
//
// An expression is built from floating point literals, named constants,
// single-argument functions, the four basic operators, and parenthesized
// grouping. No syntax tree is built: each grammar production computes its
// value as it recognizes input, and the first failure aborts the whole
// evaluation with the offset at which recognition stopped.
//
// The grammar has an unusual shape: the product rule takes a whole sum as
// its right operand, and the sum rule consumes at most one operator, so
// chained operators group to the right. "2*3+4" evaluates to 14, not 10.
// This grouping is part of the package's contract and is preserved as is.
package calc
