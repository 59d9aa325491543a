// Package intcalc implements a calculator over signed 64-bit integers.
//
// Expressions are made of decimal integer literals, the binary operators
// + - * / with the usual precedence, unary minus, and parentheses. "-2*3"
// is "(-2)*3", and "1-2-3" is "(1-2)-3". There are no variables, functions,
// or implicit multiplication.
//
// Every node of a parsed expression remembers the span of the input it came
// from. Literals are converted to integers only during evaluation, and all
// arithmetic is checked, so an evaluation failure is always reported as the
// exact subexpression that caused it:
//
//	_, err := intcalc.EvalString("1 + 9223372036854775807 * 2")
//	// err is an *EvalError with Kind Overflow covering "9223372036854775807 * 2".
//
package intcalc
