package intcalc

import (
	"errors"
	"strconv"
)

// FormatError renders an error from Parse or Eval as lines for a user who
// typed src. Syntax errors give one line per problem:
//
//	Parsing error at line 1 column 5: no expression at end.
//
// An evaluation error gives a single line quoting the failing subexpression:
//
//	Evaluation error at line 1 column 1, '5 / 0' divided by zero.
//
// Any other error is rendered by its Error method.
func FormatError(src string, err error) []string {
	if err == nil {
		return nil
	}
	var ee *EvalError
	if errors.As(err, &ee) {
		return []string{formatEval(src, ee)}
	}
	var errs SyntaxErrors
	if errors.As(err, &errs) {
		r := make([]string, len(errs))
		for i, e := range errs {
			r[i] = formatSyntax(src, e)
		}
		return r
	}
	var ie InputError
	if errors.As(err, &ie) {
		return []string{formatSyntax(src, ie)}
	}
	return []string{err.Error()}
}

func formatEval(src string, err *EvalError) string {
	line, col := err.Span.LineCol(src)
	return "Evaluation error at " + linecol(line, col) + ", '" + err.Text + "' " + err.Kind.String() + "."
}

func formatSyntax(src string, err InputError) string {
	line, col := err.Span().LineCol(src)
	return "Parsing error at " + linecol(line, col) + ": " + err.describe() + "."
}

func linecol(line, col int) string {
	return "line " + strconv.Itoa(line) + " column " + strconv.Itoa(col)
}
