package intcalc

import (
	"strconv"
	"strings"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid token. For a bad number, this is the whole run of
	// characters that looked like part of the number.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the rune column of the start of the token.
	Col int
	// At is the source span of the token.
	At Span
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) describe() string {
	if err.Kind == "" {
		return "invalid token " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Span() Span {
	return err.At
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser in its position. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// At is the source span of the operator.
	At Span
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, err.describe())
}

func (err *OperatorError) describe() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return "unknown " + s + " operator " + strconv.Quote(err.Operator)
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Span() Span {
	return err.At
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket, or of the end of the input when
	// an open bracket is never closed.
	Col int
	// At is the source span of the offending token.
	At Span
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, err.describe())
}

func (err *BracketError) describe() string {
	if err.Left == "" {
		return "close bracket " + err.Right + " with no open bracket"
	}
	return "open bracket " + err.Left + " with no close bracket"
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Span() Span {
	return err.At
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// At is the source span of that token.
	At Span
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, err.describe())
}

func (err *EmptyExpressionError) describe() string {
	if err.End == "" {
		if err.Col <= 1 {
			return "no expression"
		}
		return "no expression at end"
	}
	return "no expression up to " + strconv.Quote(err.End)
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Span() Span {
	return err.At
}

// UnexpectedTokenError is an error indicating a term where an operator or
// the end of the expression was expected, e.g. the 2 in "1 2". There is no
// implicit multiplication.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// At is the source span of the token.
	At Span
	// Token is the text of the token.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, err.describe())
}

func (err *UnexpectedTokenError) describe() string {
	return "expected operator before " + strconv.Quote(err.Token)
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

func (err *UnexpectedTokenError) Span() Span {
	return err.At
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// start of the token that caused the error.
	Pos() int
	// Span returns the source span of the token that caused the error.
	Span() Span

	// describe returns the error message without position information.
	describe() string
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
)

// SyntaxErrors is the list of problems found while parsing one input. Parse
// returns it whenever parsing fails, and it is never empty.
type SyntaxErrors []InputError

func (errs SyntaxErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap allows errors.As and errors.Is to inspect the individual errors.
func (errs SyntaxErrors) Unwrap() []error {
	r := make([]error, len(errs))
	for i, err := range errs {
		r[i] = err
	}
	return r
}
